// Package optics reads and immutably rewrites nested data through composable
// views. A view is absent (the whole value), a plain key into a sequence or
// mapping, or a capability built with New or taken from the view library.
//
// Values are untyped: nil is absent, []any is a sequence, map[string]any a
// mapping, values.Map an associative container and values.Set a set
// container. Writes never mutate their inputs.
//
// Every operation here completes before returning. The deferred package
// offers the same operations over futures.
package optics

import (
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/internal/kernel"
)

// View focuses a part of a value.
type View = kernel.View[Result]

// Predicate selects sequence elements by value and position.
type Predicate = kernel.Predicate

// Optic lists the capabilities of a custom view. Nil methods are missing
// capabilities; the dispatch operations fall back or fail accordingly.
type Optic struct {
	Name   string
	Create func() (any, error)
	Get    func(v any) (any, error)
	Set    func(v, payload any) (any, error)
	Update func(v any, fn func(any) (any, error)) (any, error)
	Has    func(v any) (bool, error)
	Remove func(v any) (any, error)
}

// New returns a capability view backed by o.
func New(o Optic) View {
	var c kernel.Optic[Result]
	c.Name = o.Name
	if o.Create != nil {
		c.Create = func() Result { return functional.Try(o.Create) }
	}
	if o.Get != nil {
		c.Get = func(v any) Result { return functional.TryFunc(o.Get(v)) }
	}
	if o.Set != nil {
		c.Set = func(v, payload any) Result { return functional.TryFunc(o.Set(v, payload)) }
	}
	if o.Update != nil {
		c.Update = func(v any, fn kernel.Transform[Result]) Result {
			return functional.TryFunc(o.Update(v, func(x any) (any, error) { return fn(x).Get() }))
		}
	}
	if o.Has != nil {
		c.Has = func(v any) Result {
			found, err := o.Has(v)
			return functional.TryFunc[any](found, err)
		}
	}
	if o.Remove != nil {
		c.Remove = func(v any) Result { return functional.TryFunc(o.Remove(v)) }
	}
	return kernel.Capability(c)
}

// Key returns a plain-key view. Integer keys address sequence slots, every
// other key a mapping property. A nil key is the absent view.
func Key(key any) View {
	return kernel.Key[Result](key)
}

// Absent is the identity view.
var Absent View

// Compose focuses through views left to right.
func Compose(views ...View) View {
	return core.Compose(views...)
}

// Path composes plain keys.
func Path(keys ...any) View {
	return core.Path(keys...)
}

// SplitProperty focuses several named fields at once, each through its own
// view. Has reports whether any field is present.
func SplitProperty(fields map[string]View) View {
	return core.SplitProperty(fields)
}

// Create builds an empty container the view can focus into.
func Create(view View) (any, error) {
	return core.Create(view).Get()
}

// Get reads the focus of view in v.
func Get(v any, view View) (any, error) {
	return core.Get(v, view).Get()
}

// Set replaces the focus of view in v with payload.
func Set(v any, view View, payload any) (any, error) {
	return core.Set(v, view, payload).Get()
}

// Update replaces the focus of view in v with fn applied to it.
func Update(v any, view View, fn func(any) any) (any, error) {
	return core.Update(v, view, core.Map(fn)).Get()
}

// TryUpdate is Update with a transform that may fail.
func TryUpdate(v any, view View, fn func(any) (any, error)) (any, error) {
	return core.Update(v, view, func(x any) Result { return functional.TryFunc(fn(x)) }).Get()
}

// Has reports whether the focus of view exists in v.
func Has(v any, view View) (bool, error) {
	found, err := core.Has(v, view).Get()
	if err != nil {
		return false, err
	}
	return found.(bool), nil
}

// Remove deletes the focus of view from v.
func Remove(v any, view View) (any, error) {
	return core.Remove(v, view).Get()
}
