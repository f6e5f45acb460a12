package kernel

import (
	"fmt"
	"slices"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/values"
)

// Predicate selects sequence elements by value and position.
type Predicate func(elem any, index int) bool

// Head focuses the first element of a sequence. Setting inserts at the
// front; removing drops the first element.
func (k *Kernel[R]) Head() View[R] {
	return Capability(Optic[R]{
		Name:   "head",
		Create: k.emptySequence,
		Get: k.onSequence("get", func(s []any) (any, error) {
			if len(s) == 0 {
				return nil, nil
			}
			return s[0], nil
		}),
		Set: k.onSequenceWith("set", func(s []any, payload any) (any, error) {
			return append([]any{payload}, s...), nil
		}),
		Has: k.onSequence("has", func(s []any) (any, error) {
			return len(s) > 0, nil
		}),
		Remove: k.onSequence("remove", func(s []any) (any, error) {
			if len(s) == 0 {
				return []any{}, nil
			}
			return values.CopySequence(s[1:]), nil
		}),
	})
}

// Tail focuses the last element of a sequence. Setting appends; removing
// drops the last element.
func (k *Kernel[R]) Tail() View[R] {
	return Capability(Optic[R]{
		Name:   "tail",
		Create: k.emptySequence,
		Get: k.onSequence("get", func(s []any) (any, error) {
			if len(s) == 0 {
				return nil, nil
			}
			return s[len(s)-1], nil
		}),
		Set: k.onSequenceWith("set", func(s []any, payload any) (any, error) {
			return append(values.CopySequence(s), payload), nil
		}),
		Has: k.onSequence("has", func(s []any) (any, error) {
			return len(s) > 0, nil
		}),
		Remove: k.onSequence("remove", func(s []any) (any, error) {
			if len(s) == 0 {
				return []any{}, nil
			}
			return values.CopySequence(s[:len(s)-1]), nil
		}),
	})
}

// FirstItem tests for and removes the first element equal to key. It has
// no read or write side.
func (k *Kernel[R]) FirstItem(key any) View[R] {
	return Capability(Optic[R]{
		Name: fmt.Sprintf("firstItem(%v)", key),
		Has: k.onSequence("has", func(s []any) (any, error) {
			return slices.ContainsFunc(s, func(e any) bool { return values.SameValueZero(e, key) }), nil
		}),
		Remove: k.onSequence("remove", func(s []any) (any, error) {
			i := slices.IndexFunc(s, func(e any) bool { return values.StrictEqual(e, key) })
			if i < 0 {
				return values.CopySequence(s), nil
			}
			return slices.Delete(values.CopySequence(s), i, i+1), nil
		}),
	})
}

// Item counts, tests for and removes every element equal to key.
func (k *Kernel[R]) Item(key any) View[R] {
	same := func(e any) bool { return values.SameValueZero(e, key) }
	return Capability(Optic[R]{
		Name: fmt.Sprintf("item(%v)", key),
		Get: k.onSequence("get", func(s []any) (any, error) {
			n := 0
			for _, e := range s {
				if same(e) {
					n++
				}
			}
			return n, nil
		}),
		Has: k.onSequence("has", func(s []any) (any, error) {
			return slices.ContainsFunc(s, same), nil
		}),
		Remove: k.onSequence("remove", func(s []any) (any, error) {
			return slices.DeleteFunc(values.CopySequence(s), same), nil
		}),
	})
}

// Filter focuses the elements matching pred.
func (k *Kernel[R]) Filter(pred Predicate) View[R] {
	return k.selection("filter", pred, true)
}

// Reject focuses the elements not matching pred.
func (k *Kernel[R]) Reject(pred Predicate) View[R] {
	return k.selection("reject", pred, false)
}

func (k *Kernel[R]) selection(name string, pred Predicate, want bool) View[R] {
	selected := func(e any, i int) bool { return pred(e, i) == want }
	return Capability(Optic[R]{
		Name:   name,
		Create: k.emptySequence,
		Get: k.onSequence("get", func(s []any) (any, error) {
			n := 0
			for i, e := range s {
				if selected(e, i) {
					n++
				}
			}
			return n, nil
		}),
		Update: func(v any, fn Transform[R]) R {
			s, ok := values.AsSequence(v)
			if !ok {
				return k.eff.Fail(errors.TypeMismatch("update", "sequence", v))
			}
			rs := make([]R, len(s))
			for i, e := range s {
				if selected(e, i) {
					rs[i] = fn(e)
				} else {
					rs[i] = k.eff.Pure(e)
				}
			}
			return k.joinSequence(rs)
		},
		Has: k.onSequence("has", func(s []any) (any, error) {
			for i, e := range s {
				if selected(e, i) {
					return true, nil
				}
			}
			return false, nil
		}),
		Remove: k.onSequence("remove", func(s []any) (any, error) {
			out := make([]any, 0, len(s))
			for i, e := range s {
				if !selected(e, i) {
					out = append(out, e)
				}
			}
			return out, nil
		}),
	})
}

// Each focuses every element of a sequence.
func (k *Kernel[R]) Each() View[R] {
	return Capability(Optic[R]{
		Name:   "each",
		Create: k.emptySequence,
		Get: k.onSequence("get", func(s []any) (any, error) {
			return s, nil
		}),
		Update: func(v any, fn Transform[R]) R {
			s, ok := values.AsSequence(v)
			if !ok {
				return k.eff.Fail(errors.TypeMismatch("update", "sequence", v))
			}
			rs := make([]R, len(s))
			for i, e := range s {
				rs[i] = fn(e)
			}
			return k.joinSequence(rs)
		},
	})
}

// Slice focuses the half-open range [start, end). Negative bounds count
// from the end of the sequence.
func (k *Kernel[R]) Slice(start, end int) View[R] {
	return k.slice(fmt.Sprintf("slice(%d, %d)", start, end), start, end, true)
}

// SliceFrom focuses everything from start to the end of the sequence.
func (k *Kernel[R]) SliceFrom(start int) View[R] {
	return k.slice(fmt.Sprintf("slice(%d)", start), start, 0, false)
}

func (k *Kernel[R]) slice(name string, start, end int, bounded bool) View[R] {
	return Capability(Optic[R]{
		Name: name,
		Get: k.onSequence("get", func(s []any) (any, error) {
			from, to := clampIndex(start, len(s)), len(s)
			if bounded {
				to = clampIndex(end, len(s))
			}
			if to <= from {
				return []any{}, nil
			}
			return values.CopySequence(s[from:to]), nil
		}),
		Set: k.onSequenceWith("set", func(s []any, payload any) (any, error) {
			items, ok := values.AsSequence(payload)
			if !ok {
				return nil, errors.InvalidPayload("set", "sequence", payload)
			}
			out := append(values.CopySequence(s), items...)
			if !bounded {
				return out, nil
			}
			for i := len(items); i < end-start; i++ {
				at := start + i
				if at < 0 {
					continue
				}
				for len(out) <= at {
					out = append(out, nil)
				}
				out[at] = nil
			}
			return out, nil
		}),
	})
}

func clampIndex(i, n int) int {
	if i < 0 {
		return max(i+n, 0)
	}
	return min(i, n)
}

// Concat appends to a sequence. A sequence payload is spliced in element by
// element; anything else is appended as one element.
func (k *Kernel[R]) Concat() View[R] {
	return Capability(Optic[R]{
		Name:   "concat",
		Create: k.emptySequence,
		Set: k.onSequenceWith("set", func(s []any, payload any) (any, error) {
			out := values.CopySequence(s)
			if items, ok := values.AsSequence(payload); ok {
				return append(out, items...), nil
			}
			return append(out, payload), nil
		}),
	})
}

// Reverse focuses a sequence in reverse order. Setting stores the payload
// reversed and ignores the current value.
func (k *Kernel[R]) Reverse() View[R] {
	return Capability(Optic[R]{
		Name:   "reverse",
		Create: k.emptySequence,
		Get: k.onSequence("get", func(s []any) (any, error) {
			return reversed(s), nil
		}),
		Set: func(_ any, payload any) R {
			items, ok := values.AsSequence(payload)
			if !ok {
				return k.eff.Fail(errors.InvalidPayload("set", "sequence", payload))
			}
			return k.eff.Pure(reversed(items))
		},
	})
}

func reversed(s []any) []any {
	out := values.CopySequence(s)
	slices.Reverse(out)
	return out
}

// SetAdd inserts the payload into a set container.
func (k *Kernel[R]) SetAdd() View[R] {
	return Capability(Optic[R]{
		Name: "setAdd",
		Create: func() R {
			return k.eff.Pure(values.NewSet())
		},
		Set: func(v, payload any) R {
			set, ok := v.(values.Set)
			if !ok {
				return k.eff.Fail(errors.TypeMismatch("set", "set container", v))
			}
			if !values.Hashable(payload) {
				return k.eff.Fail(errors.InvalidPayload("set", "hashable value", payload))
			}
			return k.eff.Pure(values.CloneMapSet(set, func(c values.Set) { c.Add(payload) }))
		},
	})
}

// SetKey tests for and removes key in a set or associative container.
func (k *Kernel[R]) SetKey(key any) View[R] {
	name := fmt.Sprintf("setKey(%v)", key)
	if !values.Hashable(key) {
		return k.invalidKey(name, key)
	}
	return Capability(Optic[R]{
		Name: name,
		Has: func(v any) R {
			switch c := v.(type) {
			case values.Set:
				return k.eff.Pure(c.Contains(key))
			case values.Map:
				return k.eff.Pure(c.Has(key))
			}
			return k.eff.Fail(errors.TypeMismatch("has", "set container", v))
		},
		Remove: func(v any) R {
			switch c := v.(type) {
			case values.Set:
				return k.eff.Pure(values.CloneMapSet(c, func(c values.Set) { c.Remove(key) }))
			case values.Map:
				return k.eff.Pure(values.CloneMapSet(c, func(c values.Map) { c.Delete(key) }))
			}
			return k.eff.Fail(errors.TypeMismatch("remove", "set container", v))
		},
	})
}

// MapKey focuses the entry under key in an associative container.
func (k *Kernel[R]) MapKey(key any) View[R] {
	name := fmt.Sprintf("mapKey(%v)", key)
	if !values.Hashable(key) {
		return k.invalidKey(name, key)
	}
	return Capability(Optic[R]{
		Name: name,
		Create: func() R {
			return k.eff.Pure(values.NewMap())
		},
		Get: k.onMap("get", func(m values.Map) any {
			val, _ := m.Get(key)
			return val
		}),
		Set: func(v, payload any) R {
			m, ok := v.(values.Map)
			if !ok {
				return k.eff.Fail(errors.TypeMismatch("set", "associative container", v))
			}
			return k.eff.Pure(values.CloneMapSet(m, func(c values.Map) { c.Set(key, payload) }))
		},
		Has: k.onMap("has", func(m values.Map) any {
			return m.Has(key)
		}),
		Remove: k.onMap("remove", func(m values.Map) any {
			return values.CloneMapSet(m, func(c values.Map) { c.Delete(key) })
		}),
	})
}

// Invoke reads the result of calling the named method on the value.
func (k *Kernel[R]) Invoke(method string, args ...any) View[R] {
	return Capability(Optic[R]{
		Name: "invoke(" + method + ")",
		Get: func(v any) R {
			return k.from(values.Call(v, method, args...))
		},
	})
}

func (k *Kernel[R]) invalidKey(name string, key any) View[R] {
	fail := func(any) R { return k.eff.Fail(errors.InvalidKey(key)) }
	return Capability(Optic[R]{
		Name:   name,
		Create: func() R { return k.eff.Fail(errors.InvalidKey(key)) },
		Get:    fail,
		Set:    func(any, any) R { return k.eff.Fail(errors.InvalidKey(key)) },
		Has:    fail,
		Remove: fail,
	})
}

func (k *Kernel[R]) emptySequence() R {
	return k.eff.Pure([]any{})
}

func (k *Kernel[R]) joinSequence(rs []R) R {
	return k.eff.Bind(k.eff.Join(rs), func(out any) R {
		s, _ := out.([]any)
		if s == nil {
			s = []any{}
		}
		return k.eff.Pure(s)
	})
}

func (k *Kernel[R]) onSequence(op string, fn func([]any) (any, error)) func(any) R {
	return func(v any) R {
		s, ok := values.AsSequence(v)
		if !ok {
			return k.eff.Fail(errors.TypeMismatch(op, "sequence", v))
		}
		return k.from(fn(s))
	}
}

func (k *Kernel[R]) onSequenceWith(op string, fn func([]any, any) (any, error)) func(any, any) R {
	return func(v, payload any) R {
		s, ok := values.AsSequence(v)
		if !ok {
			return k.eff.Fail(errors.TypeMismatch(op, "sequence", v))
		}
		return k.from(fn(s, payload))
	}
}

func (k *Kernel[R]) onMap(op string, fn func(values.Map) any) func(any) R {
	return func(v any) R {
		m, ok := v.(values.Map)
		if !ok {
			return k.eff.Fail(errors.TypeMismatch(op, "associative container", v))
		}
		return k.eff.Pure(fn(m))
	}
}
