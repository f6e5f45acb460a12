package functional

// Pair is one entry of a record: a field name and what was computed for it.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair builds a Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Zip pairs as[i] with bs[i], stopping at the shorter slice.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	n := min(len(as), len(bs))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = NewPair(as[i], bs[i])
	}
	return out
}
