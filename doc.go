// Package batbelt provides a collection of small, independent utility packages
// for everyday Go development: ordered collections, map and sequence helpers,
// and JSON/MessagePack serialization with date and time round-tripping.
//
// This module contains the following packages:
//
// COLLECTIONS:
//
//   - orderedset: Generic set preserving insertion order with O(1) membership,
//     insertion and removal, arena-backed storage with integer links, lazy
//     forward/backward iteration, and pop from either end
//   - safemap: Thread-safe generic map with flexible key coercion,
//     get-or-set semantics, and snapshot accessors
//
// MAPS & SEQUENCES:
//
//   - maputil: Map merging, inversion, key picking/omission, and safe lookups
//     through arbitrarily nested maps and slices
//   - sequtil: Lazy sequence helpers built on iterators, including fixed-size
//     chunking and deep flattening of nested heterogeneous containers
//
// SERIALIZATION:
//
//   - jsonutil: JSON encoding/decoding that round-trips datetime, date,
//     clock and duration values as plain formatted strings, plus generic
//     decode helpers with descriptive errors
//   - msgputil: Generic MessagePack encode/decode helpers, the binary
//     counterpart to jsonutil
//
// UTILITIES & HELPERS:
//
//   - env: Environment variable access with _FILE indirection and
//     /run/secrets fallback, and typed getters for common value kinds
//   - debug: Development helpers including stdout/stderr capture and
//     reflective deep size measurement of values
//   - utils: General purpose utilities including extended duration parsing
//     and timestamp conversion
//
// All packages are self-contained and can be used independently; none of them
// carries global state or requires setup beyond ordinary construction.
package batbelt
