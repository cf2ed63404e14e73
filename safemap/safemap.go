// Package safemap provides concurrency safe data types.
package safemap

import (
	"fmt"
	"sync"

	"github.com/spf13/cast"
)

// Map is a thread-safe map with string keys and generic type T values.
// Keys may be passed as any common scalar type; they are coerced to strings.
type Map[T any] struct {
	mu    *sync.RWMutex
	items map[string]T
}

// New creates and returns a new empty Map instance with the specified value type.
func New[T any]() Map[T] {
	return Map[T]{
		items: make(map[string]T),
		mu:    new(sync.RWMutex),
	}
}

// Get retrieves the value associated with the given key from the map.
// It returns the value and a boolean indicating whether the key was present.
func (m *Map[T]) Get(key any) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.items[getKey(key)]

	return val, ok
}

// GetOrSet retrieves the value associated with the given key, assigning the
// provided value only when the key was absent. It returns the stored value
// and a boolean indicating whether the key was already present.
func (m *Map[T]) GetOrSet(key any, val T) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := getKey(key)

	valN, ok := m.items[k]
	if !ok {
		m.items[k] = val
		return val, false
	}

	return valN, ok
}

// GetAll returns a list of all items.
func (m *Map[T]) GetAll() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.items))

	for _, item := range m.items {
		out = append(out, item)
	}

	return out
}

// GetMap returns a copy of the internal map.
func (m *Map[T]) GetMap() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]T, len(m.items))

	for key, value := range m.items {
		out[key] = value
	}

	return out
}

// Set stores the value associated with the given key in the map.
func (m *Map[T]) Set(key any, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[getKey(key)] = value
}

// SetMap replaces the internal map with the provided map.
func (m *Map[T]) SetMap(n map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = n
}

// Swap stores value under key and returns the previous value, if any.
func (m *Map[T]) Swap(key any, value T) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := getKey(key)
	prev, ok := m.items[k]
	m.items[k] = value

	return prev, ok
}

// Delete removes the value associated with the given key from the map.
// It reports whether the key was present.
func (m *Map[T]) Delete(key any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := getKey(key)

	_, ok := m.items[k]
	delete(m.items, k)

	return ok
}

// Length returns the number of key-value pairs in the map.
func (m *Map[T]) Length() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

// Keys returns a slice of all the keys in the map.
func (m *Map[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}

	return keys
}

// Range calls fn for each key-value pair until fn returns false. The snapshot
// is taken under the read lock; fn itself runs without the lock held, so it
// may call back into the map.
func (m *Map[T]) Range(fn func(key string, value T) bool) {
	for key, value := range m.GetMap() {
		if !fn(key, value) {
			return
		}
	}
}

// Clear removes all key-value pairs.
func (m *Map[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]T)
}

// getKey takes any value and returns a string representation that can be
// used as a key.
func getKey(value any) string {
	if value == nil {
		return "nil"
	}

	if err, ok := value.(error); ok {
		return err.Error()
	}

	if key, err := cast.ToStringE(value); err == nil {
		return key
	}

	return fmt.Sprintf("%+v", value)
}
