package planner

import (
	"regexp"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
)

// BuiltinDefaultTitle is used when the plan defines no default action.
const BuiltinDefaultTitle = "Execute default focus block (30 min)"

var defaultPrefix = regexp.MustCompile(`(?i)^default:\s*`)

// ResolveDefaultTitle picks the first non-empty of the daily, weekly and
// monthly default titles.
func ResolveDefaultTitle(d domain.Defaults) string {
	return domain.CoalesceStr(
		d.Daily.DefaultTitle(),
		d.Weekly.DefaultTitle(),
		d.Monthly.DefaultTitle(),
		BuiltinDefaultTitle,
	)
}

// NormalizeDefaultTitle strips a leading "Default:" label so the renderer
// can add its own without doubling it.
func NormalizeDefaultTitle(title string) string {
	return defaultPrefix.ReplaceAllString(title, "")
}

// DefaultMarker is the synthetic entry shown for an empty window.
func DefaultMarker(defaultTitle string) domain.ExecutionTask {
	return domain.ExecutionTask{Title: NormalizeDefaultTitle(defaultTitle), IsDefault: true}
}

// BuildExecutionTasks returns the items overlapping dayRange in filter order,
// or a single default marker when there are none. The result is not sorted
// for display; see SortExecutionTasks.
func BuildExecutionTasks(items []domain.PlannerItem, dayRange calendar.Range, defaultTitle string) []domain.ExecutionTask {
	return BuildSummaryTasks(ItemsInRange(items, dayRange), defaultTitle)
}

// BuildSummaryTasks projects an already-filtered window, with the same
// fallback rule as BuildExecutionTasks.
func BuildSummaryTasks(explicit []domain.PlannerItem, defaultTitle string) []domain.ExecutionTask {
	if len(explicit) == 0 {
		return []domain.ExecutionTask{DefaultMarker(defaultTitle)}
	}
	tasks := make([]domain.ExecutionTask, 0, len(explicit))
	for _, item := range explicit {
		tasks = append(tasks, domain.ExecutionTask{
			Title:     item.Title,
			HasTime:   item.HasTime,
			Start:     item.Start,
			End:       item.End,
			SortIndex: item.SortIndex,
			Category:  item.Category,
		})
	}
	return tasks
}

// WeekTheme returns the first week theme carried by a task among items.
func WeekTheme(items []domain.PlannerItem) string {
	for _, item := range items {
		if item.Source == domain.SourceTask && item.WeekTheme != "" {
			return item.WeekTheme
		}
	}
	return ""
}
