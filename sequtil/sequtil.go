// Package sequtil provides lazy helpers over sequences: fixed-size chunking
// and deep flattening of nested heterogeneous containers.
package sequtil

import (
	"iter"
	"reflect"
	"slices"
)

// Chunks splits seq into successive chunks of the given size. The final chunk
// may be shorter. Chunks are produced lazily as the source is consumed; each
// yielded slice is owned by the consumer. A size below 1 yields nothing.
func Chunks[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size < 1 {
			return
		}

		chunk := make([]T, 0, size)

		for v := range seq {
			chunk = append(chunk, v)

			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}

		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// ChunkSlice is Chunks over a slice.
func ChunkSlice[T any](items []T, size int) iter.Seq[[]T] {
	return Chunks(slices.Values(items), size)
}

// Flatten walks v depth-first and yields every non-container value it
// contains, in order. Slices and arrays of any element type are descended
// into; strings and byte slices count as atoms. A non-container v yields
// itself once. The traversal is lazy: deeper levels are only visited as the
// consumer advances.
func Flatten(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		flatten(v, yield)
	}
}

func flatten(v any, yield func(any) bool) bool {
	switch v.(type) {
	case nil, string, []byte:
		return yield(v)
	}

	rv := reflect.ValueOf(v)

	if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			if !flatten(rv.Index(i).Interface(), yield) {
				return false
			}
		}

		return true
	}

	return yield(v)
}
