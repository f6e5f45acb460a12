package kernel

import "fmt"

// Optic is a capability view: a set of optional methods. A nil func is a
// capability the view does not expose.
type Optic[R any] struct {
	Name   string
	Create func() R
	Get    func(v any) R
	Set    func(v, payload any) R
	Update func(v any, fn Transform[R]) R
	Has    func(v any) R
	Remove func(v any) R

	// path is set on views built by Compose so that nesting them in another
	// Compose splices their levels instead of adding one opaque level.
	path []View[R]
}

type viewKind uint8

const (
	absentView viewKind = iota
	keyView
	opticView
)

// View is the closed variant of focuses: absent (the zero value), a plain
// key, or a capability.
type View[R any] struct {
	kind  viewKind
	key   any
	optic *Optic[R]
}

// Key returns a plain-key view. A nil key is the absent view.
func Key[R any](key any) View[R] {
	if key == nil {
		return View[R]{}
	}
	return View[R]{kind: keyView, key: key}
}

// Capability returns a view backed by o.
func Capability[R any](o Optic[R]) View[R] {
	return View[R]{kind: opticView, optic: &o}
}

// IsAbsent reports whether v is the identity focus.
func (v View[R]) IsAbsent() bool {
	return v.kind == absentView
}

// Key returns the plain key of v.
func (v View[R]) Key() (any, bool) {
	return v.key, v.kind == keyView
}

// Optic returns the capability backing v.
func (v View[R]) Optic() (Optic[R], bool) {
	if v.kind != opticView {
		return Optic[R]{}, false
	}
	return *v.optic, true
}

// levels returns the views v stands for inside a composition: the levels of
// a composed view, or v itself.
func (v View[R]) levels() []View[R] {
	if v.kind == opticView && len(v.optic.path) > 0 {
		return v.optic.path
	}
	return []View[R]{v}
}

func (v View[R]) String() string {
	switch v.kind {
	case keyView:
		return fmt.Sprintf("%v", v.key)
	case opticView:
		if v.optic.Name != "" {
			return v.optic.Name
		}
		return "optic"
	}
	return "<absent>"
}
