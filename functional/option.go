package functional

// Option is a lookup outcome. Some(nil) is a key that holds nil, None is a
// key that is not there at all.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a present value, nil included.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None is the missing value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the value is missing.
func (o Option[T]) IsNone() bool { return !o.present }

// Unwrap returns the value, panicking on None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("functional: Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the value, or fallback on None. Lookups use it to read a
// missing key as nil.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}
