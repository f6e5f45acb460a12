package optics_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"pgregory.net/rapid"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/optictest"
)

func anySlice(xs []int) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func lawParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return parameters
}

// Property 1: absent view identity laws.
func TestAbsentViewIdentity(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("Get(V, absent) == V", prop.ForAll(
		func(xs []int) bool {
			v := anySlice(xs)
			got, err := optics.Get(v, optics.Absent)
			return err == nil && optictest.Equal(got, v)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("Set(V, absent, X) == X", prop.ForAll(
		func(xs []int, x string) bool {
			got, err := optics.Set(anySlice(xs), optics.Absent, x)
			return err == nil && got == x
		},
		gen.SliceOf(gen.Int()),
		gen.AlphaString(),
	))

	properties.Property("Remove(V, absent) == V", prop.ForAll(
		func(xs []int) bool {
			v := anySlice(xs)
			got, err := optics.Remove(v, optics.Absent)
			return err == nil && optictest.Equal(got, v)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("Has(V, absent) == (V != nil)", prop.ForAll(
		func(n int, absent bool) bool {
			var v any = n
			if absent {
				v = nil
			}
			got, err := optics.Has(v, optics.Absent)
			return err == nil && got == (v != nil)
		},
		gen.Int(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property 2: plain key round-trip.
func TestKeyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := optictest.MappingGen(optictest.ValueGen(2)).Draw(t, "v")
		key := optictest.NameGen().Draw(t, "key")
		x := optictest.ValueGen(2).Draw(t, "x")
		delete(v, key)

		written, err := optics.Set(v, optics.Key(key), x)
		if err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if found, _ := optics.Has(written, optics.Key(key)); !found {
			t.Fatalf("key %q missing after set", key)
		}
		if got, _ := optics.Get(written, optics.Key(key)); !optictest.Equal(got, x) {
			t.Fatalf("get after set: got %v, want %v", got, x)
		}
	})
}

// Property 3: index round-trip pads with nil.
func TestIndexRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := optictest.IntSequenceGen().Draw(t, "v")
		i := rapid.IntRange(len(v), len(v)+4).Draw(t, "i")

		written, err := optics.Set(v, optics.Key(i), "x")
		if err != nil {
			t.Fatalf("set failed: %v", err)
		}
		seq := written.([]any)
		if len(seq) != i+1 || seq[i] != "x" {
			t.Fatalf("unexpected sequence %v", seq)
		}
		for j := len(v); j < i; j++ {
			if seq[j] != nil {
				t.Fatalf("slot %d should be padded with nil, got %v", j, seq[j])
			}
		}
	})
}

// Property 4: set, update and remove never mutate their input.
func TestNonMutation(t *testing.T) {
	views := []optics.View{
		optics.Head,
		optics.Tail,
		optics.Each,
		optics.Reverse,
		optics.Filter(func(e any, _ int) bool { return e.(int) > 0 }),
		optics.Reject(func(e any, _ int) bool { return e.(int) > 0 }),
		optics.Item(0),
		optics.FirstItem(0),
		optics.Slice(1, 3),
		optics.Concat,
		optics.Key(0),
		optics.Key(2),
	}
	rapid.Check(t, func(t *rapid.T) {
		v := optictest.IntSequenceGen().Draw(t, "v")
		view := rapid.SampledFrom(views).Draw(t, "view")
		snapshot := optictest.Snapshot(v)

		_, _ = optics.Set(v, view, []any{7, 8})
		_, _ = optics.Update(v, view, func(x any) any { return x })
		_, _ = optics.Remove(v, view)

		if !optictest.Equal(v, snapshot) {
			t.Fatalf("input mutated through %v: %v, was %v", view, v, snapshot)
		}
	})
}

func TestNonMutationNested(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := optictest.ContainerGen(3).Draw(t, "v")
		path := pathGen().Draw(t, "path")
		snapshot := optictest.Snapshot(v)

		_, _ = optics.Set(v, optics.Path(path...), "payload")
		_, _ = optics.Update(v, optics.Path(path...), func(any) any { return 1 })
		_, _ = optics.Remove(v, optics.Path(path...))

		if !optictest.Equal(v, snapshot) {
			t.Fatalf("input mutated through %v", path)
		}
	})
}

func keyGen() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Map(optictest.NameGen(), func(s string) any { return s }),
		rapid.Map(optictest.IndexGen(), func(i int) any { return i }),
	)
}

func pathGen() *rapid.Generator[[]any] {
	return rapid.SliceOfN(keyGen(), 1, 4)
}

func level(l optictest.Level) optics.View {
	switch l.Kind {
	case optictest.KeyLevel:
		return optics.Key(l.Key)
	case optictest.HeadLevel:
		return optics.Head
	case optictest.TailLevel:
		return optics.Tail
	case optictest.MapKeyLevel:
		return optics.MapKey(l.Key)
	case optictest.EachLevel:
		return optics.Each
	case optictest.FilterLevel:
		return optics.Filter(optictest.EvenIndex)
	case optictest.ReverseLevel:
		return optics.Reverse
	}
	panic("unknown level " + string(l.Kind))
}

type outcome struct {
	value any
	err   bool
}

func (o outcome) same(other outcome) bool {
	if o.err || other.err {
		return o.err == other.err
	}
	return optictest.Equal(o.value, other.value)
}

func observe(v any, err error) outcome {
	return outcome{value: v, err: err != nil}
}

// Property 5: composition is associative.
func TestCompositionAssociativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := level(optictest.LevelGen().Draw(t, "a"))
		b := level(optictest.LevelGen().Draw(t, "b"))
		c := level(optictest.LevelGen().Draw(t, "c"))
		v := optictest.DocumentGen(3).Draw(t, "v")
		payload := optictest.ScalarGen().Draw(t, "payload")

		shapes := []optics.View{
			optics.Compose(optics.Compose(a, b), c),
			optics.Compose(a, optics.Compose(b, c)),
			optics.Compose(a, b, c),
		}
		run := func(view optics.View) []outcome {
			has, hasErr := optics.Has(v, view)
			return []outcome{
				observe(optics.Get(v, view)),
				observe(optics.Set(v, view, payload)),
				observe(has, hasErr),
				observe(optics.Remove(v, view)),
			}
		}

		want := run(shapes[2])
		for _, shape := range shapes[:2] {
			got := run(shape)
			for i := range want {
				if !got[i].same(want[i]) {
					t.Fatalf("%v disagrees with %v on op %d: %v vs %v", shape, shapes[2], i, got[i], want[i])
				}
			}
		}
	})
}

// Property 6: filter and reject are complementary.
func TestFilterRejectComplementarity(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("remove(S, filter(p)) == remove(S, reject(not p)) and counts sum to len(S)", prop.ForAll(
		func(xs []int, mod int) bool {
			s := anySlice(xs)
			p := func(e any, _ int) bool { return e.(int)%mod == 0 }
			notP := func(e any, i int) bool { return !p(e, i) }

			viaFilter, err1 := optics.Remove(s, optics.Filter(p))
			viaReject, err2 := optics.Remove(s, optics.Reject(notP))
			kept, err3 := optics.Get(s, optics.Filter(p))
			dropped, err4 := optics.Get(s, optics.Reject(p))
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				return false
			}
			return optictest.Equal(viaFilter, viaReject) && kept.(int)+dropped.(int) == len(s)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}

// Property 7: fan-out has is a logical OR over fields.
func TestSplitPropertyHasIsOr(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("has(splitProperty) == any field has", prop.ForAll(
		func(as, bs []int, needle int) bool {
			v := map[string]any{"a": anySlice(as), "b": anySlice(bs)}
			view := optics.SplitProperty(map[string]optics.View{
				"a": optics.Item(needle),
				"b": optics.Item(needle),
			})
			got, err := optics.Has(v, view)
			inA, _ := optics.Has(v["a"], optics.Item(needle))
			inB, _ := optics.Has(v["b"], optics.Item(needle))
			return err == nil && got == (inA || inB)
		},
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}

// Property 8: compose create builds every level.
func TestComposeCreateSkeleton(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		path := pathGen().Draw(t, "path")
		view := optics.Path(path...)

		skeleton, err := optics.Create(view)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		cur := skeleton
		for i, key := range path[:len(path)-1] {
			next, err := optics.Get(cur, optics.Key(key))
			if err != nil || next == nil {
				t.Fatalf("level %d (%v) missing from skeleton %v", i, key, skeleton)
			}
			cur = next
		}
		if found, _ := optics.Has(cur, optics.Key(path[len(path)-1])); found {
			t.Fatalf("innermost level should be empty: %v", cur)
		}
	})
}
