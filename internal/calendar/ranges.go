package calendar

import "time"

// Range is a time window. Membership is decided by Overlaps, which treats
// both edges as exclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end] intersects r. An interval that only
// touches an edge of r does not overlap it.
func (r Range) Overlaps(start, end time.Time) bool {
	return start.Before(r.End) && end.After(r.Start)
}

// Shift translates both edges by days calendar days, keeping clock time.
func (r Range) Shift(days int) Range {
	return Range{Start: AddDays(r.Start, days), End: AddDays(r.End, days)}
}

// Keys returns the start and end date keys, for logs and debugging.
func (r Range) Keys() (string, string) {
	return FormatDateKey(r.Start), FormatDateKey(r.End)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// AddDays moves t by n calendar days, keeping the time of day.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// ShiftRange is the function form of Range.Shift.
func ShiftRange(r Range, days int) Range {
	return r.Shift(days)
}

// DayRange covers t's whole calendar day.
func DayRange(t time.Time) Range {
	return Range{Start: StartOfDay(t), End: EndOfDay(t)}
}

// IsoWeekRange returns the Monday-to-Sunday week containing t.
func IsoWeekRange(t time.Time) Range {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	start := StartOfDay(AddDays(t, -offset))
	return Range{Start: start, End: EndOfDay(AddDays(start, 6))}
}

// MonthRange covers the calendar month containing t.
func MonthRange(t time.Time) Range {
	y, m, _ := t.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location())
	return Range{Start: start, End: EndOfDay(last)}
}

// SameDay compares calendar fields, not instants.
func SameDay(a, b time.Time) bool {
	return FormatDateKey(a) == FormatDateKey(b)
}

// DayLabel renders t as "Wed, Mar 5".
func DayLabel(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// MinutesSinceMidnight returns the clock minutes of t.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
