package planner

import (
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
)

// Overlaps reports whether item intersects r. Touching an edge is not enough.
func Overlaps(item domain.PlannerItem, r calendar.Range) bool {
	return r.Overlaps(item.Start, item.End)
}

// ItemsInRange filters items to those overlapping r, keeping input order.
func ItemsInRange(items []domain.PlannerItem, r calendar.Range) []domain.PlannerItem {
	var out []domain.PlannerItem
	for _, item := range items {
		if Overlaps(item, r) {
			out = append(out, item)
		}
	}
	return out
}

// Windows are the standing ranges anchored to one selected date.
type Windows struct {
	Days      [3]calendar.Range // selected day, +1, +2
	ThisWeek  calendar.Range
	NextWeek  calendar.Range
	WeekAfter calendar.Range
	Month     calendar.Range
}

// StandingWindows computes every standing range for selected. None of the
// ranges depends on another's contents, only on selected.
func StandingWindows(selected time.Time) Windows {
	thisWeek := calendar.IsoWeekRange(selected)
	var w Windows
	for i := range w.Days {
		w.Days[i] = calendar.DayRange(calendar.AddDays(selected, i))
	}
	w.ThisWeek = thisWeek
	w.NextWeek = thisWeek.Shift(7)
	w.WeekAfter = thisWeek.Shift(14)
	w.Month = calendar.MonthRange(selected)
	return w
}

// anchorDay maps t's calendar fields onto midnight in loc so that a date
// picked in any location means the same wall-clock day.
func anchorDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	if loc == nil {
		loc = time.Local
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
