package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatDateKey_UsesLocalFields(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2024-03-04 20:00 UTC is already March 5 in Tokyo.
	instant := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC).In(tokyo)
	assert.Equal(t, "2024-03-05", FormatDateKey(instant))
}

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("2024-03-05", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 5), got)

	_, err = ParseDateKey("03/05/2024", time.UTC)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseBoundary_DateKeyExpansion(t *testing.T) {
	start, err := ParseBoundary("2024-03-05", false, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 5), start)

	end, err := ParseBoundary("2024-03-05", true, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestParseBoundary_TimestampVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"minutes", "2024-03-04T09:00", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)},
		{"seconds", "2024-03-04T09:00:30", time.Date(2024, 3, 4, 9, 0, 30, 0, time.UTC)},
		{"fraction", "2024-03-04T09:00:30.250", time.Date(2024, 3, 4, 9, 0, 30, 250_000_000, time.UTC)},
		{"zulu", "2024-03-04T09:00:00Z", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)},
		{"offset minutes", "2024-03-04T10:00+01:00", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, isEnd := range []bool{false, true} {
				got, err := ParseBoundary(tt.value, isEnd, time.UTC)
				require.NoError(t, err)
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestParseTimestamp_Malformed(t *testing.T) {
	_, err := ParseBoundary("2024-03-04T9am", false, time.UTC)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestHasTimeComponent(t *testing.T) {
	assert.True(t, HasTimeComponent("2024-03-04T09:00"))
	assert.False(t, HasTimeComponent("2024-03-04"))
	assert.False(t, HasTimeComponent(""))
}

func TestAddDays_PreservesClock(t *testing.T) {
	in := time.Date(2024, 2, 28, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC), AddDays(in, 2))
	assert.Equal(t, time.Date(2024, 2, 21, 14, 30, 0, 0, time.UTC), AddDays(in, -7))
}

func TestIsoWeekRange_MondayAnchor(t *testing.T) {
	// Monday 2024-03-04.
	r := IsoWeekRange(date(2024, 3, 4))
	assert.Equal(t, date(2024, 3, 4), r.Start)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999_000_000, time.UTC), r.End)

	next := r.Shift(7)
	assert.Equal(t, date(2024, 3, 11), next.Start)
}

func TestIsoWeekRange_AlwaysStartsMonday(t *testing.T) {
	day := date(2023, 12, 20)
	for i := 0; i < 60; i++ {
		r := IsoWeekRange(AddDays(day, i).Add(13 * time.Hour))
		assert.Equal(t, time.Monday, r.Start.Weekday())
		assert.Equal(t, 7*24*time.Hour-time.Millisecond, r.End.Sub(r.Start))
		assert.True(t, r.Overlaps(AddDays(day, i), AddDays(day, i).Add(time.Hour)))
	}
}

func TestIsoWeekRange_SundayBelongsToPreviousWeek(t *testing.T) {
	r := IsoWeekRange(date(2024, 3, 10))
	assert.Equal(t, date(2024, 3, 4), r.Start)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		in        time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{date(2024, 2, 14), date(2024, 2, 1), time.Date(2024, 2, 29, 23, 59, 59, 999_000_000, time.UTC)},
		{date(2023, 12, 31), date(2023, 12, 1), time.Date(2023, 12, 31, 23, 59, 59, 999_000_000, time.UTC)},
		{date(2024, 4, 1), date(2024, 4, 1), time.Date(2024, 4, 30, 23, 59, 59, 999_000_000, time.UTC)},
	}
	for _, tt := range tests {
		r := MonthRange(tt.in)
		assert.Equal(t, tt.wantStart, r.Start)
		assert.Equal(t, tt.wantEnd, r.End)
	}
}

func TestRangeOverlaps_EdgesExclusive(t *testing.T) {
	r := Range{Start: date(2024, 3, 5), End: date(2024, 3, 6)}

	assert.False(t, r.Overlaps(date(2024, 3, 4), date(2024, 3, 5)), "ending at range start")
	assert.False(t, r.Overlaps(date(2024, 3, 6), date(2024, 3, 7)), "starting at range end")
	assert.True(t, r.Overlaps(date(2024, 3, 4), date(2024, 3, 5).Add(time.Millisecond)))
	assert.True(t, r.Overlaps(date(2024, 3, 1), date(2024, 3, 9)), "enclosing")
}

func TestSameDay_IgnoresClock(t *testing.T) {
	assert.True(t, SameDay(time.Date(2024, 3, 5, 0, 0, 1, 0, time.UTC), time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)))
	assert.False(t, SameDay(date(2024, 3, 5), date(2024, 3, 6)))
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Wed, Mar 6", DayLabel(date(2024, 3, 6)))
}

func TestMinutesSinceMidnight(t *testing.T) {
	assert.Equal(t, 9*60+45, MinutesSinceMidnight(time.Date(2024, 3, 4, 9, 45, 59, 0, time.UTC)))
}
