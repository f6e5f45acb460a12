package kernel

import (
	"maps"
	"slices"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/values"
)

// SplitProperty fans out over named fields, each focused by its own view.
// Fields are visited in sorted name order and run as independent branches.
func (k *Kernel[R]) SplitProperty(fields map[string]View[R]) View[R] {
	names := slices.Sorted(maps.Keys(fields))
	views := make([]View[R], len(names))
	for i, name := range names {
		views[i] = fields[name]
	}

	fanOut := func(op func(name string, view View[R]) R) R {
		branches := make([]R, len(names))
		for i, name := range names {
			view := views[i]
			branches[i] = k.eff.Go(func() R { return op(name, view) })
		}
		return k.eff.Join(branches)
	}
	record := func(r R) R {
		return k.eff.Bind(r, func(out any) R {
			results, _ := out.([]any)
			return k.eff.Pure(values.FromEntries(functional.Zip(names, results)))
		})
	}

	return Capability(Optic[R]{
		Name: "splitProperty",
		Create: func() R {
			return record(fanOut(func(_ string, view View[R]) R {
				return k.Create(view)
			}))
		},
		Get: func(v any) R {
			return record(fanOut(func(name string, view View[R]) R {
				return k.Get(field(v, name), view)
			}))
		},
		Set: func(v, payload any) R {
			incoming, ok := values.AsMapping(payload)
			if !ok {
				return k.eff.Fail(errors.InvalidPayload("set", "mapping", payload))
			}
			base, ok := values.AsMapping(v)
			if !ok {
				return k.eff.Fail(errors.TypeMismatch("set", "mapping", v))
			}
			written := fanOut(func(name string, view View[R]) R {
				return k.Set(field(v, name), view, incoming[name])
			})
			return k.eff.Bind(written, func(out any) R {
				results, _ := out.([]any)
				merged := values.CopyMapping(base)
				for i, name := range names {
					merged[name] = results[i]
				}
				return k.eff.Pure(merged)
			})
		},
		Has: func(v any) R {
			found := fanOut(func(name string, view View[R]) R {
				return k.Has(field(v, name), view)
			})
			return k.eff.Bind(found, func(out any) R {
				results, _ := out.([]any)
				return k.eff.Pure(slices.ContainsFunc(results, values.Truthy))
			})
		},
		Remove: func(v any) R {
			return record(fanOut(func(name string, view View[R]) R {
				return k.Remove(field(v, name), view)
			}))
		},
	})
}

func field(v any, name string) any {
	return values.Lookup(v, name).UnwrapOr(nil)
}
