// Package functional holds the small algebraic types the optics kernel is
// built on. Result is the immediate effect, Option distinguishes a missing
// key from a key holding nil, and Pair carries record entries.
package functional

// Result is either a value or the error that prevented computing it.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Try runs fn and captures its outcome.
func Try[T any](fn func() (T, error)) Result[T] {
	return TryFunc(fn())
}

// TryFunc lifts a Go two-value return into a Result. A non-nil err wins
// over value.
func TryFunc[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsErr reports whether r holds a failure.
func (r Result[T]) IsErr() bool { return !r.ok }

// Unwrap returns the value, panicking on a failed Result.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("functional: Unwrap on failed result: " + r.err.Error())
	}
	return r.value
}

// UnwrapErr returns the failure, panicking on a successful Result.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("functional: UnwrapErr on successful result")
	}
	return r.err
}

// UnwrapOr returns the value, or fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// Get returns the Result in Go's (value, error) form.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// FlatMapResult chains fn after r. A failed r short-circuits and fn never
// runs.
func FlatMapResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return fn(r.value)
}
