package optics

// Wrapped carries a value through a chain of operations. The first failure
// latches: later operations are skipped and Err reports it.
type Wrapped struct {
	value any
	err   error
}

// Wrap starts a chain on v.
func Wrap(v any) Wrapped {
	return Wrapped{value: v}
}

// Value returns the carried value, or nil after a failure.
func (w Wrapped) Value() any {
	return w.value
}

// Err returns the first failure of the chain.
func (w Wrapped) Err() error {
	return w.err
}

// Unwrap returns the carried value and the first failure.
func (w Wrapped) Unwrap() (any, error) {
	return w.value, w.err
}

func (w Wrapped) then(r Result) Wrapped {
	v, err := r.Get()
	return Wrapped{value: v, err: err}
}

// Get focuses the chain onto view.
func (w Wrapped) Get(view View) Wrapped {
	if w.err != nil {
		return w
	}
	return w.then(core.Get(w.value, view))
}

// Set replaces the focus of view with payload.
func (w Wrapped) Set(view View, payload any) Wrapped {
	if w.err != nil {
		return w
	}
	return w.then(core.Set(w.value, view, payload))
}

// Update replaces the focus of view with fn applied to it.
func (w Wrapped) Update(view View, fn func(any) any) Wrapped {
	if w.err != nil {
		return w
	}
	return w.then(core.Update(w.value, view, core.Map(fn)))
}

// Has carries whether the focus of view exists.
func (w Wrapped) Has(view View) Wrapped {
	if w.err != nil {
		return w
	}
	return w.then(core.Has(w.value, view))
}

// Remove deletes the focus of view.
func (w Wrapped) Remove(view View) Wrapped {
	if w.err != nil {
		return w
	}
	return w.then(core.Remove(w.value, view))
}
