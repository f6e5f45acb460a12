// Package kernel implements the optics dispatch core once, generic over the
// effect that carries each result. The immediate mode instantiates it with
// functional.Result, the deferred mode with goroutine-backed futures.
package kernel

// Effect interprets how dispatch results are produced and sequenced.
// Every value flowing through an effect is an untyped optics value.
type Effect[R any] interface {
	// Pure lifts a finished value.
	Pure(v any) R
	// Fail lifts an error.
	Fail(err error) R
	// Bind runs k on the value of r once r has resolved. A failed r is
	// propagated and k is never called.
	Bind(r R, k func(any) R) R
	// Go starts thunk as an independent branch.
	Go(thunk func() R) R
	// Join resolves all branches and yields their values as []any in input
	// order, failing if any branch fails.
	Join(rs []R) R
}

// Transform maps a focused value to its replacement.
type Transform[R any] func(any) R

// Kernel is the dispatch core bound to one effect.
type Kernel[R any] struct {
	eff Effect[R]
}

// New binds the dispatch core to eff.
func New[R any](eff Effect[R]) *Kernel[R] {
	return &Kernel[R]{eff: eff}
}

// Effect returns the effect the kernel runs in.
func (k *Kernel[R]) Effect() Effect[R] {
	return k.eff
}

func (k *Kernel[R]) from(v any, err error) R {
	if err != nil {
		return k.eff.Fail(err)
	}
	return k.eff.Pure(v)
}

// Map lifts a plain function into a transform.
func (k *Kernel[R]) Map(fn func(any) any) Transform[R] {
	return func(v any) R { return k.eff.Pure(fn(v)) }
}

// Const returns a transform that ignores its input.
func (k *Kernel[R]) Const(v any) Transform[R] {
	return func(any) R { return k.eff.Pure(v) }
}
