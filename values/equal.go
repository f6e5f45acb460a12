package values

import (
	"math"
	"reflect"
)

// SameValueZero compares two values for equality, treating NaN as equal to
// itself. Numbers compare by value across Go numeric kinds; slices, maps and
// pointers compare by identity.
func SameValueZero(a, b any) bool {
	if isNaN(a) && isNaN(b) {
		return true
	}
	return StrictEqual(a, b)
}

// StrictEqual compares like SameValueZero except that NaN never matches.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := toNumber(a); ok {
		if y, ok := toNumber(b); ok {
			return x.equal(y)
		}
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Slice, reflect.Map:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}
	if !ta.Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// Hashable reports whether v can be stored in a set or used as a map key.
func Hashable(v any) bool {
	if v == nil {
		return true
	}
	t := reflect.TypeOf(v)
	if !t.Comparable() {
		return false
	}
	ok := true
	func() {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		_ = map[any]struct{}{v: {}}
	}()
	return ok
}

func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}

type number struct {
	i    int64
	u    uint64
	f    float64
	kind reflect.Kind
}

// equal compares exactly: integers never round through float64, and a
// float matches an integer only when it holds that integer's value.
func (n number) equal(o number) bool {
	if n.kind > o.kind {
		n, o = o, n
	}
	switch {
	case n.kind == reflect.Int64 && o.kind == reflect.Int64:
		return n.i == o.i
	case n.kind == reflect.Int64 && o.kind == reflect.Uint64:
		return n.i >= 0 && uint64(n.i) == o.u
	case n.kind == reflect.Int64 && o.kind == reflect.Float64:
		return o.f == math.Trunc(o.f) && o.f >= math.MinInt64 && o.f < math.MaxInt64 && int64(o.f) == n.i
	case n.kind == reflect.Uint64 && o.kind == reflect.Uint64:
		return n.u == o.u
	case n.kind == reflect.Uint64 && o.kind == reflect.Float64:
		return o.f == math.Trunc(o.f) && o.f >= 0 && o.f < math.MaxUint64 && uint64(o.f) == n.u
	}
	return n.f == o.f
}

func (n number) float() float64 {
	switch n.kind {
	case reflect.Int64:
		return float64(n.i)
	case reflect.Uint64:
		return float64(n.u)
	}
	return n.f
}

func toNumber(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int(), kind: reflect.Int64}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{u: rv.Uint(), kind: reflect.Uint64}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float(), kind: reflect.Float64}, true
	}
	return number{}, false
}

// Truthy coerces v to a boolean: nil, false, zero, NaN and "" are false.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	if n, ok := toNumber(v); ok {
		f := n.float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}
