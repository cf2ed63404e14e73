// Package msgputil provides generic MessagePack encode/decode helpers, the
// binary counterpart to jsonutil. time.Time values are native to the format;
// time.Duration travels as int64 nanoseconds.
package msgputil

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Marshal encodes v as MessagePack.
func Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding msgpack: %w", err)
	}

	return data, nil
}

// Unmarshal decodes MessagePack data into a value of type T.
func Unmarshal[T any](data []byte) (T, error) {
	var v T

	if len(data) == 0 {
		return v, fmt.Errorf("no msgpack data provided")
	}

	if err := msgpack.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decoding msgpack: %w", err)
	}

	return v, nil
}
