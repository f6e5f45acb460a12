package optics

import (
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/internal/kernel"
)

// Result carries the outcome of one immediate operation.
type Result = functional.Result[any]

// immediate runs every operation to completion on the calling goroutine.
type immediate struct{}

var _ kernel.Effect[Result] = immediate{}

func (immediate) Pure(v any) Result {
	return functional.Ok(v)
}

func (immediate) Fail(err error) Result {
	return functional.Err[any](err)
}

func (immediate) Bind(r Result, k func(any) Result) Result {
	return functional.FlatMapResult(r, k)
}

func (immediate) Go(thunk func() Result) Result {
	return thunk()
}

func (immediate) Join(rs []Result) Result {
	out := make([]any, len(rs))
	for i, r := range rs {
		v, err := r.Get()
		if err != nil {
			return functional.Err[any](err)
		}
		out[i] = v
	}
	return functional.Ok[any](out)
}

var core = kernel.New[Result](immediate{})
