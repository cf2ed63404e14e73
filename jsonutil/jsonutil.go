// Package jsonutil provides JSON helpers: generic decoding with descriptive
// errors, and an encoder/decoder pair that round-trips datetime, date, clock
// and duration values as plain formatted strings.
package jsonutil

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Decode decodes JSON data into a value of type T.
func Decode[T any](data []byte) (T, error) {
	var v T

	if len(data) == 0 {
		return v, fmt.Errorf("no JSON data provided")
	}

	if err := json.Unmarshal(data, &v); err != nil {
		truncatedBody := string(data)
		if len(truncatedBody) > 64 {
			truncatedBody = truncatedBody[:64] + "..."
		}

		return v, fmt.Errorf("decoding JSON (%s): %w", truncatedBody, err)
	}

	return v, nil
}

// DecodeStr decodes a JSON string into a value of type T.
func DecodeStr[T any](data string) (T, error) {
	return Decode[T]([]byte(data))
}

// DecodeReader reads body to the end, closes it, and decodes the contents
// into a value of type T.
func DecodeReader[T any](body io.ReadCloser) (T, error) {
	defer body.Close()

	var zero T

	data, err := io.ReadAll(body)
	if err != nil {
		return zero, fmt.Errorf("reading body: %w", err)
	}

	return Decode[T](data)
}
