package deferred

import (
	"context"

	"github.com/authcorp/optics/concurrency"
)

// Wrapped chains operations on a pending value without blocking.
type Wrapped struct {
	value *Future
}

// Wrap starts a chain on v.
func Wrap(v any) Wrapped {
	return Wrapped{value: concurrency.Resolve(v)}
}

// WrapFuture starts a chain on a pending value.
func WrapFuture(f *Future) Wrapped {
	return Wrapped{value: f}
}

// Future returns the pending result of the chain.
func (w Wrapped) Future() *Future {
	return w.value
}

// Await blocks until the chain resolves or ctx is done.
func (w Wrapped) Await(ctx context.Context) (any, error) {
	return Await(ctx, w.value)
}

func (w Wrapped) then(op func(v any) *Future) Wrapped {
	return Wrapped{value: concurrency.FlatMap(w.value, op)}
}

// Get chains a read through view.
func (w Wrapped) Get(view View) Wrapped {
	return w.then(func(v any) *Future { return core.Get(v, view) })
}

// Set chains a write of payload through view.
func (w Wrapped) Set(view View, payload any) Wrapped {
	return w.then(func(v any) *Future { return core.Set(v, view, payload) })
}

// Update chains fn applied through view.
func (w Wrapped) Update(view View, fn Transform) Wrapped {
	return w.then(func(v any) *Future { return core.Update(v, view, fn) })
}

// Has chains a presence test through view.
func (w Wrapped) Has(view View) Wrapped {
	return w.then(func(v any) *Future { return core.Has(v, view) })
}

// Remove chains a removal through view.
func (w Wrapped) Remove(view View) Wrapped {
	return w.then(func(v any) *Future { return core.Remove(v, view) })
}
