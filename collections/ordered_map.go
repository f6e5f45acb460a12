package collections

import (
	"iter"
	"sync"

	"github.com/authcorp/optics/functional"
)

// OrderedMap is an associative container that remembers insertion order.
// Re-setting an existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	items map[K]V
	order []K
	mu    sync.RWMutex
}

// NewOrderedMap creates a new empty map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{items: make(map[K]V)}
}

// OrderedMapFrom builds a map from pairs, later pairs winning.
func OrderedMapFrom[K comparable, V any](pairs ...functional.Pair[K, V]) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}
	return m
}

// Set stores value under key.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; !ok {
		m.order = append(m.order, key)
	}
	m.items[key] = value
}

// Get returns the value for key.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

// Lookup returns the value for key as an Option.
func (m *OrderedMap[K, V]) Lookup(key K) functional.Option[V] {
	if v, ok := m.Get(key); ok {
		return functional.Some(v)
	}
	return functional.None[V]()
}

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key.
func (m *OrderedMap[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; !ok {
		return
	}
	delete(m.items, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// Keys returns keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]K, len(m.order))
	copy(result, m.order)
	return result
}

// Entries returns key-value pairs in insertion order.
func (m *OrderedMap[K, V]) Entries() []functional.Pair[K, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]functional.Pair[K, V], len(m.order))
	for i, k := range m.order {
		result[i] = functional.NewPair(k, m.items[k])
	}
	return result
}

// All iterates entries in insertion order over a snapshot.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	entries := m.Entries()
	return func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.First, e.Second) {
				return
			}
		}
	}
}

// Clone returns an independent shallow copy.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	clone := &OrderedMap[K, V]{
		items: make(map[K]V, len(m.items)),
		order: make([]K, len(m.order)),
	}
	copy(clone.order, m.order)
	for k, v := range m.items {
		clone.items[k] = v
	}
	return clone
}
