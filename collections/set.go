// Package collections provides the set and associative containers the
// optics views read and clone.
package collections

import (
	"iter"
	"sync"
)

// Set is a generic insertion-ordered set.
type Set[T comparable] struct {
	items map[T]int
	order []T
	mu    sync.RWMutex
}

// NewSet creates a new empty set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{items: make(map[T]int)}
}

// SetFrom creates a set from a slice.
func SetFrom[T comparable](items ...T) *Set[T] {
	s := NewSet[T]()
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add adds an item to the set.
func (s *Set[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item]; ok {
		return
	}
	s.items[item] = len(s.order)
	s.order = append(s.order, item)
}

// Remove removes an item from the set.
func (s *Set[T]) Remove(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.items[item]
	if !ok {
		return
	}
	delete(s.items, item)
	s.order = append(s.order[:idx], s.order[idx+1:]...)
	for i := idx; i < len(s.order); i++ {
		s.items[s.order[i]] = i
	}
}

// Contains checks if item is in the set.
func (s *Set[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[item]
	return ok
}

// Size returns the number of items.
func (s *Set[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// ToSlice returns items in insertion order.
func (s *Set[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]T, len(s.order))
	copy(result, s.order)
	return result
}

// All iterates items in insertion order over a snapshot.
func (s *Set[T]) All() iter.Seq[T] {
	items := s.ToSlice()
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Set[T]{
		items: make(map[T]int, len(s.items)),
		order: make([]T, len(s.order)),
	}
	copy(clone.order, s.order)
	for k, v := range s.items {
		clone.items[k] = v
	}
	return clone
}

// Equals checks if two sets hold the same items, ignoring order.
func (s *Set[T]) Equals(other *Set[T]) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, item := range s.ToSlice() {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}
