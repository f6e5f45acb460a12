package kernel

import (
	"slices"
	"strings"
)

// pruned marks a composed read that hit an absent intermediate.
type pruned struct{}

// Compose focuses through views in order. Zero views is the absent view and
// a single view is returned unchanged. Composed views passed in are spliced
// into one flat path, so every nesting of the same views behaves the same.
func (k *Kernel[R]) Compose(views ...View[R]) View[R] {
	switch len(views) {
	case 0:
		return View[R]{}
	case 1:
		return views[0]
	}
	var path []View[R]
	for _, view := range views {
		path = append(path, view.levels()...)
	}
	prefix, last := path[:len(path)-1], path[len(path)-1]

	return Capability(Optic[R]{
		Name: composedName(path),
		path: slices.Clip(path),
		Create: func() R {
			return k.skeleton(path)
		},
		Get: func(v any) R {
			return k.walk(v, prefix, nil, func(target any) R {
				return k.Get(target, last)
			})
		},
		Has: func(v any) R {
			return k.walk(v, prefix, false, func(target any) R {
				return k.Has(target, last)
			})
		},
		Set: func(v, payload any) R {
			return k.descend(v, prefix, func(target any) R {
				return k.Set(target, last, payload)
			})
		},
		Update: func(v any, fn Transform[R]) R {
			return k.descend(v, prefix, func(target any) R {
				return k.Update(target, last, fn)
			})
		},
		Remove: func(v any) R {
			return k.descend(v, prefix, func(target any) R {
				return k.Remove(target, last)
			})
		},
	})
}

// Path composes plain-key views.
func (k *Kernel[R]) Path(keys ...any) View[R] {
	views := make([]View[R], len(keys))
	for i, key := range keys {
		views[i] = Key[R](key)
	}
	return k.Compose(views...)
}

// walk reads through prefix and hands the innermost value to leaf. The walk
// stops with fallback as soon as an intermediate value is absent.
func (k *Kernel[R]) walk(v any, prefix []View[R], fallback any, leaf func(any) R) R {
	r := k.eff.Pure(v)
	for _, view := range prefix {
		r = k.eff.Bind(r, func(cur any) R {
			if cur == nil {
				return k.eff.Pure(pruned{})
			}
			if _, ok := cur.(pruned); ok {
				return k.eff.Pure(cur)
			}
			return k.Get(cur, view)
		})
	}
	return k.eff.Bind(r, func(cur any) R {
		if _, ok := cur.(pruned); ok || cur == nil {
			return k.eff.Pure(fallback)
		}
		return leaf(cur)
	})
}

// descend builds the chain of updates through prefix, innermost first, and
// applies it to v.
func (k *Kernel[R]) descend(v any, prefix []View[R], leaf Transform[R]) R {
	step := leaf
	for i := len(prefix) - 1; i >= 0; i-- {
		view, inner := prefix[i], step
		step = func(cur any) R {
			return k.Update(cur, view, inner)
		}
	}
	return step(v)
}

// skeleton creates every level of path and nests each inner container
// into its outer one. The innermost container stays empty.
func (k *Kernel[R]) skeleton(path []View[R]) R {
	r := k.Create(path[len(path)-1])
	for i := len(path) - 2; i >= 0; i-- {
		view := path[i]
		r = k.eff.Bind(r, func(inner any) R {
			return k.eff.Bind(k.Create(view), func(outer any) R {
				return k.Set(outer, view, inner)
			})
		})
	}
	return r
}

func composedName[R any](path []View[R]) string {
	parts := make([]string, len(path))
	for i, view := range path {
		parts[i] = view.String()
	}
	return "compose(" + strings.Join(parts, ", ") + ")"
}
