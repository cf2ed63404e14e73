package jsonutil

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// Wire formats for time values. Only naive (zone-less) values round-trip;
// store timezone information in a separate field if you need it.
const (
	DateTimeFormat = "2006-01-02 15:04:05.000000"
	DateFormat     = "2006-01-02"
	ClockFormat    = "15:04:05.000000"
)

var (
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{6}$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern    = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{6}$`)
	durationPattern = regexp.MustCompile(`^duration\('([^']+)'\)$`)
)

// Date is a calendar date without a time-of-day component.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", s, err)
	}

	*d = Date(t)

	return nil
}

// Clock is a time of day without a date component.
type Clock time.Time

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(c).Format(ClockFormat))
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return fmt.Errorf("parsing clock %q: %w", s, err)
	}

	*c = Clock(t)

	return nil
}

// Marshal encodes v as JSON after rewriting every time.Time, Date, Clock and
// time.Duration value found in maps and slices into its wire string:
//
//	time.Time     -> "2000-01-01 01:01:01.000000"
//	Date          -> "2000-01-01"
//	Clock         -> "01:01:01.000000"
//	time.Duration -> "duration('24h0m1s')"
//
// Values of other types are passed to the JSON encoder untouched, so structs
// still follow their own MarshalJSON/tags.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(convert(v))
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}

	return data, nil
}

// Unmarshal decodes JSON without a target type and revives time values:
// every string matching one of the wire formats becomes a time.Time, Date,
// Clock or time.Duration. Strings that match no pattern, and everything
// else, decode as encoding/json would into any.
func Unmarshal(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	return revive(v), nil
}

// convert deep-rewrites time values to strings, leaving the rest alone.
func convert(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(DateTimeFormat)
	case Date:
		return time.Time(val).Format(DateFormat)
	case Clock:
		return time.Time(val).Format(ClockFormat)
	case time.Duration:
		return fmt.Sprintf("duration('%s')", val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = convert(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convert(item)
		}
		return out
	case nil, string, []byte:
		return v
	}

	// Typed maps and slices go through reflection.
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			out[cast.ToString(it.Key().Interface())] = convert(it.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = convert(rv.Index(i).Interface())
		}
		return out
	}

	return v
}

func revive(v any) any {
	switch val := v.(type) {
	case string:
		return reviveString(val)
	case map[string]any:
		for k, item := range val {
			val[k] = revive(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = revive(item)
		}
		return val
	}

	return v
}

// reviveString returns the time value a wire string stands for, or the
// string itself when it matches no format. A pattern match with a failed
// parse (e.g. "99:99:99.000000") falls back to the plain string.
func reviveString(s string) any {
	switch {
	case dateTimePattern.MatchString(s):
		if t, err := time.Parse(DateTimeFormat, s); err == nil {
			return t
		}
	case datePattern.MatchString(s):
		if t, err := time.Parse(DateFormat, s); err == nil {
			return Date(t)
		}
	case clockPattern.MatchString(s):
		if t, err := time.Parse(ClockFormat, s); err == nil {
			return Clock(t)
		}
	case durationPattern.MatchString(s):
		m := durationPattern.FindStringSubmatch(s)
		if d, err := time.ParseDuration(m[1]); err == nil {
			return d
		}
	}

	return s
}
