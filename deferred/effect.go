package deferred

import (
	"github.com/authcorp/optics/concurrency"
	"github.com/authcorp/optics/internal/kernel"
)

// Future is a pending optics result.
type Future = concurrency.Future[any]

// futures runs every continuation on its own goroutine once its input
// resolves. Join waits on all branches concurrently.
type futures struct{}

var _ kernel.Effect[*Future] = futures{}

func (futures) Pure(v any) *Future {
	return concurrency.Resolve(v)
}

func (futures) Fail(err error) *Future {
	return concurrency.Reject[any](err)
}

func (futures) Bind(f *Future, k func(any) *Future) *Future {
	return concurrency.FlatMap(f, k)
}

func (futures) Go(thunk func() *Future) *Future {
	return concurrency.NewFuture(func() (any, error) {
		return thunk().Get()
	})
}

func (futures) Join(fs []*Future) *Future {
	return concurrency.Map(concurrency.Join(fs...), func(vs []any) any {
		if vs == nil {
			return []any{}
		}
		return vs
	})
}

var core = kernel.New[*Future](futures{})
