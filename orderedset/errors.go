package orderedset

import "errors"

// ErrEmptyContainer indicates a pop from a set holding no elements.
var ErrEmptyContainer = errors.New("empty container")
