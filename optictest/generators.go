// Package optictest provides rapid generators and comparison helpers for
// testing optics operations.
package optictest

import (
	"fmt"
	"reflect"

	"pgregory.net/rapid"

	"github.com/authcorp/optics/values"
)

// NameGen generates mapping property names.
func NameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z]{1,6}`)
}

// IndexGen generates small sequence indices.
func IndexGen() *rapid.Generator[int] {
	return rapid.IntRange(0, 6)
}

// ScalarGen generates non-container values. NaN is never generated.
func ScalarGen() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Map(rapid.IntRange(-100, 100), func(i int) any { return i }),
		rapid.Map(rapid.StringMatching(`[a-z0-9]{0,8}`), func(s string) any { return s }),
		rapid.Map(rapid.Bool(), func(b bool) any { return b }),
	)
}

// SequenceGen generates sequences of elem.
func SequenceGen(elem *rapid.Generator[any]) *rapid.Generator[[]any] {
	return rapid.SliceOfN(elem, 0, 6)
}

// MappingGen generates mappings of elem.
func MappingGen(elem *rapid.Generator[any]) *rapid.Generator[map[string]any] {
	return rapid.MapOfN(NameGen(), elem, 0, 5)
}

// ValueGen generates nested values up to depth levels deep.
func ValueGen(depth int) *rapid.Generator[any] {
	if depth <= 0 {
		return ScalarGen()
	}
	inner := ValueGen(depth - 1)
	return rapid.OneOf(
		ScalarGen(),
		rapid.Map(SequenceGen(inner), func(s []any) any { return s }),
		rapid.Map(MappingGen(inner), func(m map[string]any) any { return m }),
	)
}

// ContainerGen generates a sequence or a mapping of nested values.
func ContainerGen(depth int) *rapid.Generator[any] {
	inner := ValueGen(depth - 1)
	return rapid.OneOf(
		rapid.Map(SequenceGen(inner), func(s []any) any { return s }),
		rapid.Map(MappingGen(inner), func(m map[string]any) any { return m }),
	)
}

// AssocGen generates associative containers keyed by names.
func AssocGen(elem *rapid.Generator[any]) *rapid.Generator[values.Map] {
	return rapid.Custom(func(t *rapid.T) values.Map {
		m := values.NewMap()
		for _, k := range rapid.SliceOfNDistinct(NameGen(), 0, 4, rapid.ID[string]).Draw(t, "keys") {
			m.Set(k, elem.Draw(t, "elem"))
		}
		return m
	})
}

// DocumentGen is ValueGen with associative containers in the mix.
func DocumentGen(depth int) *rapid.Generator[any] {
	if depth <= 0 {
		return ScalarGen()
	}
	inner := DocumentGen(depth - 1)
	return rapid.OneOf(
		ScalarGen(),
		rapid.Map(SequenceGen(inner), func(s []any) any { return s }),
		rapid.Map(MappingGen(inner), func(m map[string]any) any { return m }),
		rapid.Map(AssocGen(inner), func(m values.Map) any { return m }),
	)
}

// LevelKind names the view a Level stands for.
type LevelKind string

const (
	KeyLevel     LevelKind = "key"
	HeadLevel    LevelKind = "head"
	TailLevel    LevelKind = "tail"
	MapKeyLevel  LevelKind = "mapKey"
	EachLevel    LevelKind = "each"
	FilterLevel  LevelKind = "filter"
	ReverseLevel LevelKind = "reverse"
)

// Level describes one composition level. Tests turn it into a view of the
// mode under test, so immediate and deferred runs see the same shapes.
type Level struct {
	Kind LevelKind
	Key  any
}

func (l Level) String() string {
	if l.Kind == KeyLevel || l.Kind == MapKeyLevel {
		return fmt.Sprintf("%s(%v)", l.Kind, l.Key)
	}
	return string(l.Kind)
}

// LevelGen generates plain keys and library views in roughly equal measure.
func LevelGen() *rapid.Generator[Level] {
	key := rapid.OneOf(
		rapid.Map(NameGen(), func(s string) any { return s }),
		rapid.Map(IndexGen(), func(i int) any { return i }),
	)
	return rapid.Custom(func(t *rapid.T) Level {
		kind := rapid.SampledFrom([]LevelKind{
			KeyLevel, KeyLevel, HeadLevel, TailLevel, MapKeyLevel, EachLevel, FilterLevel, ReverseLevel,
		}).Draw(t, "kind")
		switch kind {
		case KeyLevel:
			return Level{Kind: kind, Key: key.Draw(t, "key")}
		case MapKeyLevel:
			return Level{Kind: kind, Key: NameGen().Draw(t, "key")}
		}
		return Level{Kind: kind}
	})
}

// EvenIndex is the predicate FilterLevel stands for.
func EvenIndex(_ any, i int) bool { return i%2 == 0 }

// IntSequenceGen generates sequences of small integers.
func IntSequenceGen() *rapid.Generator[[]any] {
	return rapid.SliceOfN(
		rapid.Map(rapid.IntRange(-50, 50), func(i int) any { return i }),
		0, 10,
	)
}

// Snapshot deep-copies v so later mutation of v can be detected with Equal.
func Snapshot(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Snapshot(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Snapshot(e)
		}
		return out
	case values.Map:
		out := values.NewMap()
		for k, e := range x.All() {
			out.Set(k, Snapshot(e))
		}
		return out
	case values.Set:
		return x.Clone()
	}
	return v
}

// Equal reports deep equality of two optics values, comparing associative
// containers entry by entry in order and sets as sets.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, e := range x {
			f, ok := y[k]
			if !ok || !Equal(e, f) {
				return false
			}
		}
		return true
	case values.Map:
		y, ok := b.(values.Map)
		if !ok || x.Len() != y.Len() {
			return false
		}
		xe, ye := x.Entries(), y.Entries()
		for i := range xe {
			if !Equal(xe[i].First, ye[i].First) || !Equal(xe[i].Second, ye[i].Second) {
				return false
			}
		}
		return true
	case values.Set:
		y, ok := b.(values.Set)
		return ok && x.Equals(y)
	}
	return reflect.DeepEqual(a, b)
}
