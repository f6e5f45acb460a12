// Package concurrency provides goroutine-backed futures used by the deferred
// optics mode.
package concurrency

import (
	"context"

	"github.com/authcorp/optics/concurrency/errgroup"
	"github.com/authcorp/optics/functional"
)

// Future is a value being computed on another goroutine. Once settled it
// never changes, so any number of goroutines may wait on it.
type Future[T any] struct {
	result functional.Result[T]
	done   chan struct{}
}

// NewFuture starts fn and returns a future for its outcome.
func NewFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.result = functional.Try(fn)
	}()
	return f
}

// Resolve returns an already settled future holding value.
func Resolve[T any](value T) *Future[T] {
	return settled(functional.Ok(value))
}

// Reject returns an already settled future holding err.
func Reject[T any](err error) *Future[T] {
	return settled(functional.Err[T](err))
}

func settled[T any](r functional.Result[T]) *Future[T] {
	f := &Future[T]{result: r, done: make(chan struct{})}
	close(f.done)
	return f
}

// Wait blocks until the future settles and returns its result.
func (f *Future[T]) Wait() functional.Result[T] {
	<-f.done
	return f.result
}

// Get is Wait in Go's (value, error) form.
func (f *Future[T]) Get() (T, error) {
	return f.Wait().Get()
}

// WaitContext waits until the future settles or ctx ends. Giving up on the
// wait leaves the computation running.
func (f *Future[T]) WaitContext(ctx context.Context) functional.Result[T] {
	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		return functional.Err[T](ctx.Err())
	}
}

// IsDone reports whether the future has settled.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Map applies fn to the settled value. Failures pass through.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return FlatMap(f, func(value T) *Future[U] {
		return Resolve(fn(value))
	})
}

// FlatMap starts the future returned by fn once f settles successfully.
// A failed f is propagated and fn never runs.
func FlatMap[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return NewFuture(func() (U, error) {
		value, err := f.Get()
		if err != nil {
			return *new(U), err
		}
		return fn(value).Get()
	})
}

// Join waits for every future concurrently and yields their values in
// argument order. Any failure fails the join; the other futures still run
// to completion.
func Join[T any](futures ...*Future[T]) *Future[[]T] {
	return NewFuture(func() ([]T, error) {
		g := errgroup.New[T]()
		for _, f := range futures {
			g.Go(f.Get)
		}
		return g.Wait()
	})
}
