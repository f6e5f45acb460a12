package optics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/collections"
	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/values"
)

func mustGet(t *testing.T, v any, view optics.View) any {
	t.Helper()
	got, err := optics.Get(v, view)
	require.NoError(t, err)
	return got
}

func mustSet(t *testing.T, v any, view optics.View, payload any) any {
	t.Helper()
	got, err := optics.Set(v, view, payload)
	require.NoError(t, err)
	return got
}

func mustRemove(t *testing.T, v any, view optics.View) any {
	t.Helper()
	got, err := optics.Remove(v, view)
	require.NoError(t, err)
	return got
}

func mustHas(t *testing.T, v any, view optics.View) bool {
	t.Helper()
	got, err := optics.Has(v, view)
	require.NoError(t, err)
	return got
}

func TestHeadAndTail(t *testing.T) {
	s := []any{1, 2, 3}

	assert.Equal(t, 1, mustGet(t, s, optics.Head))
	assert.Equal(t, 3, mustGet(t, s, optics.Tail))
	assert.Nil(t, mustGet(t, []any{}, optics.Head))
	assert.Equal(t, []any{2, 3}, mustRemove(t, s, optics.Head))
	assert.Equal(t, []any{1, 2}, mustRemove(t, s, optics.Tail))
	assert.Equal(t, []any{}, mustRemove(t, []any{}, optics.Tail))
	assert.Equal(t, []any{"x"}, mustSet(t, nil, optics.Head, "x"))

	updated, err := optics.Update(s, optics.Head, func(x any) any { return x.(int) + 10 })
	require.NoError(t, err)
	assert.Equal(t, []any{11, 1, 2, 3}, updated, "update goes through set, which inserts")

	_, err = optics.Get(map[string]any{}, optics.Head)
	assert.True(t, errors.HasCode(err, errors.ErrCodeTypeMismatch))
}

func TestTypedSlicesAreSequences(t *testing.T) {
	assert.Equal(t, "b", mustGet(t, []string{"a", "b"}, optics.Tail))
	assert.Equal(t, []any{0, 1, 2}, mustSet(t, []int{1, 2}, optics.Head, 0))
}

func TestFirstItem(t *testing.T) {
	s := []any{1, 2, 1}
	assert.True(t, mustHas(t, s, optics.FirstItem(1)))
	assert.False(t, mustHas(t, s, optics.FirstItem(5)))
	assert.Equal(t, []any{2, 1}, mustRemove(t, s, optics.FirstItem(1)))
	assert.Equal(t, s, mustRemove(t, s, optics.FirstItem(5)))

	nan := math.NaN()
	withNaN := []any{nan, 1}
	assert.True(t, mustHas(t, withNaN, optics.FirstItem(nan)), "has treats NaN as equal to itself")
	assert.Len(t, mustRemove(t, withNaN, optics.FirstItem(nan)), 2, "remove uses strict equality")

	_, err := optics.Get(s, optics.FirstItem(1))
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingCapability))
}

func TestItem(t *testing.T) {
	nan := math.NaN()
	s := []any{1, nan, 1, 2, nan}
	assert.Equal(t, 2, mustGet(t, s, optics.Item(1)))
	assert.Equal(t, 2, mustGet(t, s, optics.Item(nan)))
	assert.Equal(t, 1, mustGet(t, s, optics.Item(2.0)), "numbers compare across kinds")
	assert.True(t, mustHas(t, s, optics.Item(nan)))
	assert.Len(t, mustRemove(t, s, optics.Item(1)), 3)
	assert.Equal(t, []any{1, 1, 2}, mustRemove(t, []any{1, nan, 1, 2}, optics.Item(nan)))
}

func TestFilterAndReject(t *testing.T) {
	s := []any{1, 2, 3, 4, 5}

	assert.Equal(t, 2, mustGet(t, s, optics.Filter(even)))
	assert.Equal(t, 3, mustGet(t, s, optics.Reject(even)))
	assert.True(t, mustHas(t, s, optics.Filter(even)))
	assert.False(t, mustHas(t, []any{1, 3}, optics.Filter(even)))
	assert.Equal(t, []any{1, 3, 5}, mustRemove(t, s, optics.Filter(even)))
	assert.Equal(t, []any{2, 4}, mustRemove(t, s, optics.Reject(even)))

	byIndex := optics.Filter(func(_ any, i int) bool { return i == 0 })
	got, err := optics.Update(s, byIndex, func(any) any { return "first" })
	require.NoError(t, err)
	assert.Equal(t, []any{"first", 2, 3, 4, 5}, got)

	got, err = optics.Update(s, optics.Reject(even), func(x any) any { return -x.(int) })
	require.NoError(t, err)
	assert.Equal(t, []any{-1, 2, -3, 4, -5}, got)
}

func TestEach(t *testing.T) {
	s := []any{1, 2, 3}
	assert.Equal(t, s, mustGet(t, s, optics.Each))

	got, err := optics.Update(s, optics.Each, func(x any) any { return x.(int) * x.(int) })
	require.NoError(t, err)
	assert.Equal(t, []any{1, 4, 9}, got)

	got, err = optics.Update([]any{}, optics.Each, func(x any) any { return x })
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)

	got, err = optics.Set([]any{1, 2}, optics.Each, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{0, 0}, got, "set through each overwrites every element")
}

func TestSlice(t *testing.T) {
	s := []any{0, 1, 2, 3, 4}

	assert.Equal(t, []any{1, 2}, mustGet(t, s, optics.Slice(1, 3)))
	assert.Equal(t, []any{3}, mustGet(t, s, optics.Slice(-2, -1)))
	assert.Equal(t, []any{}, mustGet(t, s, optics.Slice(3, 1)))
	assert.Equal(t, []any{3, 4}, mustGet(t, s, optics.SliceFrom(3)))
	assert.Equal(t, []any{0, 1, 2, 3, 4}, mustGet(t, s, optics.Slice(-10, 10)))

	got := mustSet(t, []any{0, 1, 2}, optics.Slice(1, 3), []any{"a"})
	assert.Equal(t, []any{0, 1, nil, "a"}, got, "payload is appended and the rest of the range padded")

	got = mustSet(t, []any{0, 1}, optics.Slice(1, 5), []any{"a"})
	assert.Equal(t, []any{0, 1, nil, nil, nil}, got)

	got = mustSet(t, []any{0}, optics.SliceFrom(0), []any{"a", "b"})
	assert.Equal(t, []any{0, "a", "b"}, got)

	_, err := optics.Set(s, optics.Slice(0, 1), "scalar")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPayload))

	_, err = optics.Set(nil, optics.Slice(0, 1), []any{"a"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingCapability), "slice cannot create a sequence")
	_, err = optics.Create(optics.SliceFrom(0))
	assert.ErrorIs(t, err, errors.ErrMissingCapability)
}

func TestConcat(t *testing.T) {
	assert.Equal(t, []any{1, 2, 3}, mustSet(t, []any{1}, optics.Concat, []any{2, 3}))
	assert.Equal(t, []any{1, "x"}, mustSet(t, []any{1}, optics.Concat, "x"))
	assert.Equal(t, []any{"x"}, mustSet(t, nil, optics.Concat, "x"))

	_, err := optics.Get([]any{1}, optics.Concat)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingCapability))
}

func TestReverse(t *testing.T) {
	s := []any{1, 2, 3}
	assert.Equal(t, []any{3, 2, 1}, mustGet(t, s, optics.Reverse))
	assert.Equal(t, []any{"c", "b", "a"}, mustSet(t, s, optics.Reverse, []any{"a", "b", "c"}))

	view := optics.Compose(optics.Reverse, optics.Head)
	assert.Equal(t, 3, mustGet(t, s, view))
	assert.Equal(t, []any{1, 2, 3, 4}, mustSet(t, s, view, 4), "writes through a reversed path land in forward order")
}

func TestSetAddAndSetKey(t *testing.T) {
	set := collections.SetFrom[any]("a", "b")

	added := mustSet(t, set, optics.SetAdd, "c").(values.Set)
	assert.Equal(t, []any{"a", "b", "c"}, added.ToSlice())
	assert.Equal(t, 2, set.Size(), "original set is untouched")

	fresh := mustSet(t, nil, optics.SetAdd, 1).(values.Set)
	assert.True(t, fresh.Contains(1))

	assert.True(t, mustHas(t, set, optics.SetKey("a")))
	assert.False(t, mustHas(t, set, optics.SetKey("z")))

	removed := mustRemove(t, set, optics.SetKey("a")).(values.Set)
	assert.Equal(t, []any{"b"}, removed.ToSlice())
	assert.True(t, set.Contains("a"))

	_, err := optics.Set(set, optics.SetAdd, []any{1})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPayload))

	_, err = optics.Has(set, optics.SetKey([]any{1}))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidKey))
}

func TestMapKey(t *testing.T) {
	m := values.NewMap()
	m.Set(1, "one")

	assert.Equal(t, "one", mustGet(t, m, optics.MapKey(1)))
	assert.Nil(t, mustGet(t, m, optics.MapKey(2)))
	assert.True(t, mustHas(t, m, optics.MapKey(1)))
	assert.False(t, mustHas(t, m, optics.MapKey("1")), "associative keys are not converted")

	written := mustSet(t, m, optics.MapKey(2), "two").(values.Map)
	assert.Equal(t, []any{1, 2}, written.Keys())
	assert.Equal(t, 1, m.Len())

	removed := mustRemove(t, m, optics.MapKey(1)).(values.Map)
	assert.Equal(t, 0, removed.Len())
	assert.True(t, m.Has(1))

	assert.True(t, mustHas(t, m, optics.SetKey(1)), "setKey also reads associative containers")

	_, err := optics.Get(map[string]any{}, optics.MapKey("a"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeTypeMismatch))
}

type greeter struct{ name string }

func (g greeter) Greet(greeting string) string { return greeting + ", " + g.name }

func (g greeter) Split() (string, string) { return "hello", g.name }

func (g greeter) Fail() (string, error) {
	return "", errors.New(errors.ErrCodeInvalidPayload, "nope")
}

func TestInvoke(t *testing.T) {
	g := greeter{name: "ada"}

	assert.Equal(t, "hi, ada", mustGet(t, g, optics.Invoke("Greet", "hi")))
	assert.Equal(t, []any{"hello", "ada"}, mustGet(t, g, optics.Invoke("Split")))

	_, err := optics.Get(g, optics.Invoke("Fail"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPayload))

	_, err = optics.Get(g, optics.Invoke("Missing"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeMethodNotFound))

	_, err = optics.Get(g, optics.Invoke("Greet"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPayload))

	_, err = optics.Get(g, optics.Invoke("Greet", 42))
	assert.ErrorIs(t, err, errors.ErrInvalidPayload)

	_, err = optics.Set(g, optics.Invoke("Greet", "hi"), "x")
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingCapability))
}

func TestComposeShortCircuits(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": 1}}

	assert.Nil(t, mustGet(t, doc, optics.Path("x", "y", "z")))
	assert.False(t, mustHas(t, doc, optics.Path("x", "y")))
	assert.True(t, mustHas(t, doc, optics.Path("a", "b")))

	// firstItem has no get; the walk stops before ever reaching it.
	view := optics.Compose(optics.Key("missing"), optics.FirstItem(1), optics.Key(0))
	assert.Nil(t, mustGet(t, doc, view))

	_, err := optics.Get(map[string]any{"missing": []any{1}}, view)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingCapability))
}

func TestComposeRemove(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": 1, "c": 2}}

	assert.Equal(t,
		map[string]any{"a": map[string]any{"c": 2}},
		mustRemove(t, doc, optics.Path("a", "b")))
	assert.Equal(t,
		map[string]any{"a": map[string]any{"b": 1, "c": 2}, "x": nil},
		mustRemove(t, doc, optics.Path("x", "b")),
		"remove descends through update like set does")
}

func TestComposeRemoveThroughUpdateFallback(t *testing.T) {
	b, c := optics.Key("b"), optics.Key("c")
	v := []any{map[string]any{}}
	want := []any{map[string]any{"b": nil}, map[string]any{}}

	for name, view := range map[string]optics.View{
		"flat":  optics.Compose(optics.Head, b, c),
		"left":  optics.Compose(optics.Compose(optics.Head, b), c),
		"right": optics.Compose(optics.Head, optics.Compose(b, c)),
	} {
		assert.Equal(t, want, mustRemove(t, v, view), name)
	}
}

func TestComposeSplicesNestedCompositions(t *testing.T) {
	a, b, c := optics.Key("a"), optics.Head, optics.Key(0)
	flat := optics.Compose(a, b, c)

	assert.Equal(t, flat.String(), optics.Compose(optics.Compose(a, b), c).String())
	assert.Equal(t, flat.String(), optics.Compose(a, optics.Compose(b, c)).String())
	assert.Equal(t, "compose(a, head, 0)", flat.String())

	doc := map[string]any{}
	want := mustRemove(t, doc, flat)
	assert.Equal(t, want, mustRemove(t, doc, optics.Compose(a, optics.Compose(b, c))))
}

func TestComposeEdgeCases(t *testing.T) {
	assert.True(t, optics.Compose().IsAbsent())
	key := optics.Key("a")
	assert.Equal(t, key, optics.Compose(key))
}

func TestComposeCreateWithCapabilities(t *testing.T) {
	created, err := optics.Create(optics.Compose(optics.MapKey("a"), optics.Key(0)))
	require.NoError(t, err)
	m := created.(values.Map)
	inner, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, []any{}, inner)
}

func TestSplitProperty(t *testing.T) {
	view := optics.SplitProperty(map[string]optics.View{
		"names": optics.Key(1),
		"ages":  optics.Key(1),
	})
	doc := map[string]any{
		"names": []any{"ann", "bob"},
		"ages":  []any{30, 40},
		"other": true,
	}

	assert.Equal(t, map[string]any{"names": "bob", "ages": 40}, mustGet(t, doc, view))

	written := mustSet(t, doc, view, map[string]any{"names": "cy", "ages": 50})
	assert.Equal(t, map[string]any{
		"names": []any{"ann", "cy"},
		"ages":  []any{30, 50},
		"other": true,
	}, written)

	assert.Equal(t, map[string]any{
		"names": []any{"ann"},
		"ages":  []any{30},
	}, mustRemove(t, doc, view), "remove yields only the named fields")

	created, err := optics.Create(view)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"names": []any{}, "ages": []any{}}, created)

	_, err = optics.Set(doc, view, 1)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPayload))
}

func TestSplitPropertyHasScenario(t *testing.T) {
	v := map[string]any{"a": []any{}, "b": []any{1}}
	view := optics.SplitProperty(map[string]optics.View{
		"a": optics.Item(1),
		"b": optics.Item(1),
	})
	assert.True(t, mustHas(t, v, view))
	assert.False(t, mustHas(t, v["a"], optics.Item(1)))
}

func TestCustomOpticName(t *testing.T) {
	view := optics.New(optics.Optic{Name: "custom"})
	assert.Equal(t, "custom", view.String())
	assert.Equal(t, "compose(a, custom)", optics.Compose(optics.Key("a"), view).String())
}
