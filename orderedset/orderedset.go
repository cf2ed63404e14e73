// Package orderedset provides a generic mutable set that preserves insertion
// order, with O(1) membership test, insertion and removal.
package orderedset

import (
	"fmt"
	"iter"
	"strings"
)

// node is a single arena slot. Neighbor links are slot indices into the arena
// rather than pointers, so the structure holds no reference cycles and
// vacated slots can be recycled through the free list.
type node[T comparable] struct {
	key  T
	prev int
	next int
}

// OrderedSet is a set whose iteration order is the order of first insertion
// among the keys currently present. Removing a key and adding it back moves
// it to the most-recently-inserted position.
//
// All nodes live in a contiguous arena; slot 0 is a circular sentinel that is
// never exposed to callers. An empty set is the sentinel linked to itself.
//
// The zero value is not usable; construct with New.
//
// OrderedSet is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own locking.
type OrderedSet[T comparable] struct {
	nodes []node[T] // arena; nodes[0] is the sentinel
	index map[T]int // key -> occupied arena slot
	free  []int     // vacated slots available for reuse
}

// New creates an OrderedSet holding each distinct item, in first-occurrence
// order. Duplicates are collapsed silently.
func New[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		nodes: make([]node[T], 1, len(items)+1),
		index: make(map[T]int, len(items)),
	}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Len returns the number of distinct elements currently held.
func (s *OrderedSet[T]) Len() int {
	return len(s.index)
}

// Contains reports whether key is present.
func (s *OrderedSet[T]) Contains(key T) bool {
	_, ok := s.index[key]
	return ok
}

// Add inserts key at the end of the iteration order. Adding a key that is
// already present changes neither order nor size.
func (s *OrderedSet[T]) Add(key T) {
	if _, ok := s.index[key]; ok {
		return
	}

	slot := s.alloc()
	tail := s.nodes[0].prev

	s.nodes[slot] = node[T]{key: key, prev: tail, next: 0}
	s.nodes[tail].next = slot
	s.nodes[0].prev = slot
	s.index[key] = slot
}

// Discard removes key from the set. Discarding an absent key is a no-op.
func (s *OrderedSet[T]) Discard(key T) {
	slot, ok := s.index[key]
	if !ok {
		return
	}

	n := s.nodes[slot]
	s.nodes[n.prev].next = n.next
	s.nodes[n.next].prev = n.prev

	// Zero the slot so the arena does not pin the removed key.
	s.nodes[slot] = node[T]{}
	s.free = append(s.free, slot)

	delete(s.index, key)
}

// Pop removes and returns the most recently inserted element.
// It returns ErrEmptyContainer when the set is empty.
func (s *OrderedSet[T]) Pop() (T, error) {
	return s.pop(s.nodes[0].prev)
}

// PopFront removes and returns the oldest element.
// It returns ErrEmptyContainer when the set is empty.
func (s *OrderedSet[T]) PopFront() (T, error) {
	return s.pop(s.nodes[0].next)
}

func (s *OrderedSet[T]) pop(slot int) (T, error) {
	if len(s.index) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}

	key := s.nodes[slot].key
	s.Discard(key)

	return key, nil
}

// Values returns an iterator over the elements in insertion order. Each call
// starts a fresh walk over the order current at iteration time. Mutating the
// set while a walk is in progress is not supported.
func (s *OrderedSet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for slot := s.nodes[0].next; slot != 0; slot = s.nodes[slot].next {
			if !yield(s.nodes[slot].key) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in reverse insertion order.
func (s *OrderedSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for slot := s.nodes[0].prev; slot != 0; slot = s.nodes[slot].prev {
			if !yield(s.nodes[slot].key) {
				return
			}
		}
	}
}

// Slice returns the elements in insertion order as a new slice.
func (s *OrderedSet[T]) Slice() []T {
	out := make([]T, 0, len(s.index))

	for v := range s.Values() {
		out = append(out, v)
	}

	return out
}

// Equal reports whether both sets hold the same elements in the same order.
func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	if s.Len() != other.Len() {
		return false
	}

	b := other.nodes[0].next
	for a := s.nodes[0].next; a != 0; a = s.nodes[a].next {
		if s.nodes[a].key != other.nodes[b].key {
			return false
		}
		b = other.nodes[b].next
	}

	return true
}

// EqualSet reports whether the set holds exactly the elements of other,
// ignoring order. Comparison against anything but a set-like value is
// deliberately unsupported.
func (s *OrderedSet[T]) EqualSet(other map[T]struct{}) bool {
	if len(s.index) != len(other) {
		return false
	}

	for key := range other {
		if _, ok := s.index[key]; !ok {
			return false
		}
	}

	return true
}

// Clear removes all elements and releases the arena.
func (s *OrderedSet[T]) Clear() {
	s.nodes = []node[T]{{}}
	s.index = make(map[T]int)
	s.free = nil
}

// String implements fmt.Stringer.
func (s *OrderedSet[T]) String() string {
	var b strings.Builder

	b.WriteString("OrderedSet[")

	first := true
	for v := range s.Values() {
		if !first {
			b.WriteByte(' ')
		}
		first = false

		fmt.Fprintf(&b, "%v", v)
	}

	b.WriteByte(']')

	return b.String()
}

// alloc returns a slot for a new node, reusing a vacated one when available.
func (s *OrderedSet[T]) alloc() int {
	if n := len(s.free); n > 0 {
		slot := s.free[n-1]
		s.free = s.free[:n-1]

		return slot
	}

	s.nodes = append(s.nodes, node[T]{})

	return len(s.nodes) - 1
}
