// Package errgroup runs a batch of functions concurrently and gathers their
// results in submission order.
package errgroup

import "sync"

// Group collects results from goroutines and keeps the first error. Unlike
// golang.org/x/sync/errgroup it carries typed results, and a failure does
// not cancel the remaining functions.
type Group[T any] struct {
	wg      sync.WaitGroup
	mu      sync.Mutex
	results []T
	err     error
}

// New returns an empty Group.
func New[T any]() *Group[T] {
	return &Group[T]{}
}

// Go starts fn in its own goroutine. Its result lands at the position of
// this call among all calls to Go.
func (g *Group[T]) Go(fn func() (T, error)) {
	g.mu.Lock()
	slot := len(g.results)
	g.results = append(g.results, *new(T))
	g.mu.Unlock()

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		result, err := fn()

		g.mu.Lock()
		defer g.mu.Unlock()
		switch {
		case err == nil:
			g.results[slot] = result
		case g.err == nil:
			g.err = err
		}
	}()
}

// Wait blocks until every function has returned. On failure it returns the
// first error in completion order and no results.
func (g *Group[T]) Wait() ([]T, error) {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	return g.results, nil
}
