// Package maputil provides helpers for merging, reshaping and searching maps,
// including lookups through arbitrarily nested containers.
package maputil

import (
	"reflect"

	"github.com/spf13/cast"
)

// Merge returns a new map holding the entries of d1 and d2.
// On conflicting keys the entry from d2 wins.
func Merge[K comparable, V any](d1, d2 map[K]V) map[K]V {
	out := make(map[K]V, len(d1)+len(d2))

	for k, v := range d1 {
		out[k] = v
	}
	for k, v := range d2 {
		out[k] = v
	}

	return out
}

// Invert returns a new map with keys and values swapped. When several keys
// share a value, a single one of them survives; which one is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))

	for k, v := range m {
		out[v] = k
	}

	return out
}

// Pick returns a copy of m restricted to the given keys.
// Keys absent from m are skipped.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))

	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}

	return out
}

// Omit returns a copy of m without the given keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, ok := drop[k]; !ok {
			out[k] = v
		}
	}

	return out
}

// Get applies the given keys successively to nested maps and slices and
// returns the value reached. Map keys are coerced to the map's key type,
// slice and array keys are coerced to integer indices. Any failed step
// (missing key, index out of range, non-container value) returns false.
//
//	v, ok := maputil.Get(data, "test", 0, "bla")
//
// is the safe equivalent of data["test"][0]["bla"].
func Get(data any, keys ...any) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}

	value := data
	for _, key := range keys {
		var ok bool
		if value, ok = step(value, key); !ok {
			return nil, false
		}
	}

	return value, true
}

// GetDefault is Get returning fallback instead of false.
func GetDefault(data, fallback any, keys ...any) any {
	if v, ok := Get(data, keys...); ok {
		return v
	}

	return fallback
}

// step resolves a single key against one container level.
func step(data, key any) (any, bool) {
	switch v := data.(type) {
	case map[string]any:
		val, ok := v[cast.ToString(key)]
		return val, ok
	case map[any]any:
		val, ok := v[key]
		return val, ok
	case []any:
		idx, err := cast.ToIntE(key)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, false
		}
		return v[idx], true
	}

	// Uncommon container types go through reflection.
	rv := reflect.ValueOf(data)

	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if !kv.IsValid() {
			return nil, false
		}

		if !kv.Type().AssignableTo(rv.Type().Key()) {
			if !kv.Type().ConvertibleTo(rv.Type().Key()) {
				return nil, false
			}
			kv = kv.Convert(rv.Type().Key())
		}

		val := rv.MapIndex(kv)
		if !val.IsValid() {
			return nil, false
		}

		return val.Interface(), true

	case reflect.Slice, reflect.Array:
		idx, err := cast.ToIntE(key)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}

		return rv.Index(idx).Interface(), true
	}

	return nil, false
}
