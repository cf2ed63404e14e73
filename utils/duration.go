// Package utils holds general purpose helpers that fit nowhere else.
package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// daysPattern extends time.ParseDuration syntax with a days segment,
// e.g. "2d12h30m".
var daysPattern = regexp.MustCompile(`^(\d+d)?(\d+h)?(\d+m)?(\d+s)?$`)

// Duration is a time.Duration that marshals to its string form and accepts
// numbers, standard duration strings, and a day-extended "NdNhNmNs" syntax
// when unmarshaling.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := ParseDuration(value)
		if err != nil {
			return err
		}

		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// ParseDuration parses a duration string, accepting everything
// time.ParseDuration does plus a leading days segment ("1d12h").
func ParseDuration(value string) (time.Duration, error) {
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed, nil
	}

	matches := daysPattern.FindStringSubmatch(value)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: %q", value)
	}

	var (
		duration time.Duration
		hasMatch bool
	)

	for _, match := range matches[1:] {
		if match == "" {
			continue
		}

		hasMatch = true

		num, err := strconv.Atoi(match[:len(match)-1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration segment: %v", match)
		}

		switch match[len(match)-1] {
		case 'd':
			duration += time.Duration(num) * 24 * time.Hour
		case 'h':
			duration += time.Duration(num) * time.Hour
		case 'm':
			duration += time.Duration(num) * time.Minute
		case 's':
			duration += time.Duration(num) * time.Second
		}
	}

	if !hasMatch {
		return 0, fmt.Errorf("invalid duration: %q", value)
	}

	return duration, nil
}

// ToTimestamp returns the Unix timestamp in seconds for t, evaluated in UTC.
func ToTimestamp(t time.Time) int64 {
	return t.UTC().Unix()
}
