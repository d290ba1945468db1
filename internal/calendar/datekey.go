// Package calendar holds the date primitives the planner windows are built
// from. All values are wall-clock times in a caller-supplied location; no
// timezone conversion happens here beyond interpreting explicit offsets.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the layout of a date-only key such as "2024-03-05".
const DateKeyLayout = "2006-01-02"

// ErrInvalidDate is wrapped by every parse failure in this package.
var ErrInvalidDate = errors.New("invalid date value")

// timestampLayouts are tried in order for values carrying a time component.
// Layouts without a zone are interpreted in the caller's location. Fractional
// seconds are accepted after the seconds field by time.Parse itself.
var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
}

func orLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// FormatDateKey returns t's calendar date as YYYY-MM-DD using t's own
// location fields.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key to midnight in loc (time.Local when nil).
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, strings.TrimSpace(key), orLocal(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, key)
	}
	return t, nil
}

// HasTimeComponent reports whether value carries a clock time rather than
// being a bare date key.
func HasTimeComponent(value string) bool {
	return strings.Contains(value, "T")
}

// ParseTimestamp parses a value with a time component. Values with an
// explicit offset are converted into loc so that clock fields stay
// comparable with date-only values.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	loc = orLocal(loc)
	v := strings.TrimSpace(value)
	for _, l := range timestampLayouts {
		if l.zoned {
			if t, err := time.Parse(l.layout, v); err == nil {
				return t.In(loc), nil
			}
			continue
		}
		if t, err := time.ParseInLocation(l.layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q: expected a timestamp such as 2006-01-02T15:04", ErrInvalidDate, value)
}

// ParseValue parses either form without boundary expansion: timestamps
// verbatim, date keys at midnight.
func ParseValue(value string, loc *time.Location) (time.Time, error) {
	if HasTimeComponent(value) {
		return ParseTimestamp(value, loc)
	}
	return ParseDateKey(value, loc)
}

// ParseBoundary parses value as an interval boundary. Timestamps are taken
// verbatim; a date key expands to 00:00:00.000 for a start boundary or to
// 23:59:59.999 when isEnd is set.
func ParseBoundary(value string, isEnd bool, loc *time.Location) (time.Time, error) {
	if HasTimeComponent(value) {
		return ParseTimestamp(value, loc)
	}
	day, err := ParseDateKey(value, loc)
	if err != nil {
		return time.Time{}, err
	}
	if isEnd {
		return EndOfDay(day), nil
	}
	return day, nil
}
