package kernel

import (
	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/values"
)

// Create builds an empty container the view can focus into.
func (k *Kernel[R]) Create(view View[R]) R {
	switch view.kind {
	case absentView:
		return k.eff.Pure(nil)
	case opticView:
		if view.optic.Create == nil {
			return k.eff.Fail(errors.MissingCapability("create", "Create"))
		}
		return view.optic.Create()
	}
	if values.IsIntegerIndex(view.key) {
		return k.eff.Pure([]any{})
	}
	return k.eff.Pure(map[string]any{})
}

// Get reads the focus of view in v. An absent v yields nil without
// consulting the view.
func (k *Kernel[R]) Get(v any, view View[R]) R {
	if v == nil {
		return k.eff.Pure(nil)
	}
	switch view.kind {
	case absentView:
		return k.eff.Pure(v)
	case opticView:
		if view.optic.Get == nil {
			return k.eff.Fail(errors.MissingCapability("get", "Get"))
		}
		return view.optic.Get(v)
	}
	return k.eff.Pure(values.Lookup(v, view.key).UnwrapOr(nil))
}

// Set replaces the focus of view in v with payload and returns the new
// whole. An absent v is first materialized through the view's Create.
func (k *Kernel[R]) Set(v any, view View[R], payload any) R {
	switch view.kind {
	case absentView:
		return k.eff.Pure(payload)
	case keyView:
		return k.from(values.UpdateKey(v, view.key, payload))
	}
	o := view.optic
	return k.materialize("set", v, o, func(target any) R {
		switch {
		case o.Set != nil:
			return o.Set(target, payload)
		case o.Update != nil:
			return o.Update(target, k.Const(payload))
		}
		return k.eff.Fail(errors.MissingCapability("set", "Set"))
	})
}

// Update applies fn to the focus of view in v. Views without an Update
// capability fall back to Get followed by Set.
func (k *Kernel[R]) Update(v any, view View[R], fn Transform[R]) R {
	switch view.kind {
	case absentView:
		return k.eff.Pure(v)
	case keyView:
		return k.eff.Bind(fn(values.Lookup(v, view.key).UnwrapOr(nil)), func(next any) R {
			return k.from(values.UpdateKey(v, view.key, next))
		})
	}
	o := view.optic
	if o.Update != nil {
		if v == nil && o.Create != nil {
			return k.materialize("update", v, o, func(target any) R {
				return o.Update(target, fn)
			})
		}
		return o.Update(v, fn)
	}
	if v != nil && o.Get == nil {
		return k.eff.Fail(errors.MissingCapability("update", "Get"))
	}
	if o.Set == nil {
		return k.eff.Fail(errors.MissingCapability("update", "Set"))
	}
	return k.eff.Bind(k.eff.Bind(k.Get(v, view), fn), func(next any) R {
		return k.Set(v, view, next)
	})
}

// Has reports whether the focus of view exists in v. Capability results are
// coerced with values.Truthy.
func (k *Kernel[R]) Has(v any, view View[R]) R {
	if v == nil {
		return k.eff.Pure(false)
	}
	switch view.kind {
	case absentView:
		return k.eff.Pure(true)
	case opticView:
		if view.optic.Has == nil {
			return k.eff.Fail(errors.MissingCapability("has", "Has"))
		}
		return k.eff.Bind(view.optic.Has(v), func(found any) R {
			return k.eff.Pure(values.Truthy(found))
		})
	}
	return k.eff.Pure(values.Contains(v, view.key))
}

// Remove deletes the focus of view from v and returns the new whole.
func (k *Kernel[R]) Remove(v any, view View[R]) R {
	if v == nil {
		return k.eff.Pure(nil)
	}
	switch view.kind {
	case absentView:
		return k.eff.Pure(v)
	case opticView:
		if view.optic.Remove == nil {
			return k.eff.Fail(errors.MissingCapability("remove", "Remove"))
		}
		return view.optic.Remove(v)
	}
	return k.from(values.RemoveKey(v, view.key))
}

// materialize runs next on v, or on a fresh container from o.Create when v
// is absent.
func (k *Kernel[R]) materialize(op string, v any, o *Optic[R], next func(any) R) R {
	if v != nil {
		return next(v)
	}
	if o.Create == nil {
		return k.eff.Fail(errors.MissingCapability(op, "Create"))
	}
	return k.eff.Bind(o.Create(), next)
}
