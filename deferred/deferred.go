// Package deferred runs optics operations as futures. Every operation
// returns immediately with a *Future; compositions chain levels as each one
// resolves, and fan-out fields resolve concurrently.
//
// Semantics match the immediate operations of package optics exactly.
// Nothing is cancelled once issued; callers bound their wait with Await.
package deferred

import (
	"context"

	"github.com/authcorp/optics/concurrency"
	"github.com/authcorp/optics/internal/kernel"
)

// View focuses a part of a value in deferred mode.
type View = kernel.View[*Future]

// Optic lists the capabilities of a custom deferred view. Methods return
// futures; nil methods are missing capabilities.
type Optic = kernel.Optic[*Future]

// Transform maps a focused value to a pending replacement.
type Transform = kernel.Transform[*Future]

// Predicate selects sequence elements by value and position.
type Predicate = kernel.Predicate

// New returns a capability view backed by o.
func New(o Optic) View {
	return kernel.Capability(o)
}

// Key returns a plain-key view.
func Key(key any) View {
	return kernel.Key[*Future](key)
}

// Absent is the identity view.
var Absent View

// Lift adapts a plain function into a transform.
func Lift(fn func(any) any) Transform {
	return core.Map(fn)
}

// Async runs fn on its own goroutine.
func Async(fn func(any) (any, error)) Transform {
	return func(v any) *Future {
		return concurrency.NewFuture(func() (any, error) { return fn(v) })
	}
}

// Value returns an already resolved future.
func Value(v any) *Future {
	return concurrency.Resolve(v)
}

// Failure returns an already failed future.
func Failure(err error) *Future {
	return concurrency.Reject[any](err)
}

// Await blocks until f resolves or ctx is done.
func Await(ctx context.Context, f *Future) (any, error) {
	return f.WaitContext(ctx).Get()
}

// Compose focuses through views left to right.
func Compose(views ...View) View {
	return core.Compose(views...)
}

// Path composes plain keys.
func Path(keys ...any) View {
	return core.Path(keys...)
}

// SplitProperty focuses several named fields at once, resolving every field
// concurrently.
func SplitProperty(fields map[string]View) View {
	return core.SplitProperty(fields)
}

// Create builds an empty container the view can focus into.
func Create(view View) *Future {
	return core.Create(view)
}

// Get reads the focus of view in v.
func Get(v any, view View) *Future {
	return core.Get(v, view)
}

// Set replaces the focus of view in v with payload.
func Set(v any, view View, payload any) *Future {
	return core.Set(v, view, payload)
}

// Update replaces the focus of view in v with the resolution of fn.
func Update(v any, view View, fn Transform) *Future {
	return core.Update(v, view, fn)
}

// Has resolves to whether the focus of view exists in v.
func Has(v any, view View) *Future {
	return core.Has(v, view)
}

// Remove deletes the focus of view from v.
func Remove(v any, view View) *Future {
	return core.Remove(v, view)
}
