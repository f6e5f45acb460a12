package values

import (
	"reflect"

	"github.com/authcorp/optics/collections"
	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
)

// Map is the associative container kind.
type Map = *collections.OrderedMap[any, any]

// Set is the set container kind.
type Set = *collections.Set[any]

// NewMap returns an empty associative container.
func NewMap() Map {
	return collections.NewOrderedMap[any, any]()
}

// NewSet returns an empty set container.
func NewSet() Set {
	return collections.NewSet[any]()
}

// AsSequence returns v as an ordered sequence. []any is returned as is;
// other slice and array kinds are copied element by element.
func AsSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}, true
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// AsMapping returns v as a plain mapping. map[string]any is returned as is;
// other maps keyed by strings are copied.
func AsMapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// CopySequence returns a shallow copy of s.
func CopySequence(s []any) []any {
	out := make([]any, len(s))
	copy(out, s)
	return out
}

// CopyMapping returns a shallow copy of m.
func CopyMapping(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Lookup reads key from a sequence or mapping. Index keys address sequence
// slots or the decimal property of a mapping; other keys address mapping
// properties only. A nil sequence slot is a hole and reads as missing.
func Lookup(v any, key any) functional.Option[any] {
	if v == nil || !ValidKey(key) {
		return functional.None[any]()
	}
	if i, ok := Index(key); ok {
		if s, ok := AsSequence(v); ok {
			if i < len(s) && s[i] != nil {
				return functional.Some(s[i])
			}
			return functional.None[any]()
		}
	}
	if m, ok := AsMapping(v); ok {
		if val, ok := m[Name(key)]; ok {
			return functional.Some(val)
		}
	}
	return functional.None[any]()
}

// Contains reports whether key is present in v.
func Contains(v any, key any) bool {
	return Lookup(v, key).IsSome()
}

// UpdateKey immutably writes payload under key. An index key writes into a
// sequence (growing it with nil padding), any other key into a mapping; a nil
// v starts from an empty container of that kind.
func UpdateKey(v any, key any, payload any) (any, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if i, ok := Index(key); ok {
		var out []any
		if v != nil {
			s, ok := AsSequence(v)
			if !ok {
				return nil, errors.TypeMismatch("set", "sequence", v)
			}
			out = CopySequence(s)
		}
		for len(out) <= i {
			out = append(out, nil)
		}
		out[i] = payload
		return out, nil
	}
	out := map[string]any{}
	if v != nil {
		m, ok := AsMapping(v)
		if !ok {
			return nil, errors.TypeMismatch("set", "mapping", v)
		}
		out = CopyMapping(m)
	}
	out[Name(key)] = payload
	return out, nil
}

// RemoveKey returns a container of the key's kind holding every key of v
// except the focused one. Removing a sequence slot leaves a nil hole unless
// it is the last slot, which shortens the sequence.
func RemoveKey(v any, key any) (any, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if i, ok := Index(key); ok {
		s, ok := AsSequence(v)
		if !ok {
			return nil, errors.TypeMismatch("remove", "sequence", v)
		}
		out := CopySequence(s)
		switch {
		case i == len(out)-1:
			out = out[:i]
		case i < len(out):
			out[i] = nil
		}
		return out, nil
	}
	m, ok := AsMapping(v)
	if !ok {
		return nil, errors.TypeMismatch("remove", "mapping", v)
	}
	name := Name(key)
	out := make(map[string]any, len(m))
	for k, val := range m {
		if k != name {
			out[k] = val
		}
	}
	return out, nil
}

// Cloner is implemented by containers that can copy themselves.
type Cloner[C any] interface {
	Clone() C
}

// CloneMapSet clones c and applies mutate to the private clone.
func CloneMapSet[C Cloner[C]](c C, mutate func(C)) C {
	clone := c.Clone()
	mutate(clone)
	return clone
}

// FromEntries converts key-value pairs into a mapping.
func FromEntries(pairs []functional.Pair[string, any]) map[string]any {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		out[p.First] = p.Second
	}
	return out
}
