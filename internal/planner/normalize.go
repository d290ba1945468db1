// Package planner turns a plan document into the windowed board views: the
// three standing days, the three standing weeks and the current month, each
// falling back to a single default action when nothing is scheduled.
//
// Everything here is a pure function of (plan, selected date, today). No
// clock is read and no state survives between calls.
package planner

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
)

// SkipReason explains why a task was left off the timeline.
type SkipReason string

const (
	SkipMissingDate SkipReason = "missing date"
	SkipInvalidDate SkipReason = "invalid date"
)

// SkippedTask records a task excluded from all windows.
type SkippedTask struct {
	Index  int
	ID     string
	Title  string
	Reason SkipReason
}

// Normalize builds planner items from the dated tasks (in input order)
// followed by the events (in input order). SortIndex counts across both.
// Tasks without a usable date are returned as skipped; a malformed start or
// end value on a placed record is an error.
func Normalize(doc *domain.PlanDocument, loc *time.Location) ([]domain.PlannerItem, []SkippedTask, error) {
	items := make([]domain.PlannerItem, 0, len(doc.Tasks)+len(doc.Events))
	var skipped []SkippedTask

	for i, task := range doc.Tasks {
		if reason, ok := placeable(task, loc); !ok {
			skipped = append(skipped, SkippedTask{Index: i, ID: task.ID, Title: task.Title, Reason: reason})
			continue
		}
		item, err := itemFromTask(task, len(items), loc)
		if err != nil {
			return nil, nil, fmt.Errorf("task %q: %w", taskLabel(task, i), err)
		}
		items = append(items, item)
	}

	for i, event := range doc.Events {
		item, err := itemFromEvent(event, len(items), loc)
		if err != nil {
			return nil, nil, fmt.Errorf("event %d %q: %w", i, event.Title, err)
		}
		items = append(items, item)
	}

	return items, skipped, nil
}

func placeable(task domain.Task, loc *time.Location) (SkipReason, bool) {
	if task.Date == "" {
		return SkipMissingDate, false
	}
	if _, err := calendar.ParseDateKey(task.Date, loc); err != nil {
		return SkipInvalidDate, false
	}
	return "", true
}

func taskLabel(task domain.Task, index int) string {
	if task.ID != "" {
		return task.ID
	}
	return fmt.Sprintf("#%d %s", index, task.Title)
}

func itemFromTask(task domain.Task, sortIndex int, loc *time.Location) (domain.PlannerItem, error) {
	startValue := domain.CoalesceStr(task.Start, task.Date)
	endValue := domain.CoalesceStr(task.End, task.Date)

	start, end, err := boundaries(startValue, endValue, loc)
	if err != nil {
		return domain.PlannerItem{}, err
	}
	return domain.PlannerItem{
		ID:        task.ID,
		Title:     task.Title,
		Start:     start,
		End:       end,
		Source:    domain.SourceTask,
		HasTime:   calendar.HasTimeComponent(startValue) || calendar.HasTimeComponent(endValue),
		SortIndex: sortIndex,
		Category:  task.Category,
		WeekTheme: task.WeekTheme,
	}, nil
}

func itemFromEvent(event domain.Event, sortIndex int, loc *time.Location) (domain.PlannerItem, error) {
	start, end, err := boundaries(event.Start, event.End, loc)
	if err != nil {
		return domain.PlannerItem{}, err
	}
	return domain.PlannerItem{
		Title:     event.Title,
		Start:     start,
		End:       end,
		Source:    domain.SourceEvent,
		HasTime:   calendar.HasTimeComponent(event.Start) || calendar.HasTimeComponent(event.End),
		SortIndex: sortIndex,
		Category:  event.Category,
	}, nil
}

func boundaries(startValue, endValue string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := calendar.ParseBoundary(startValue, false, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}
	end, err := calendar.ParseBoundary(endValue, true, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}
