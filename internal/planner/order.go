package planner

import (
	"sort"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
)

// SortExecutionTasks returns a display-ordered copy of tasks:
// 1. Timed before untimed
// 2. Timed: start clock time ascending (minutes since midnight)
// 3. SortIndex ascending
func SortExecutionTasks(tasks []domain.ExecutionTask) []domain.ExecutionTask {
	sorted := make([]domain.ExecutionTask, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.HasTime != b.HasTime {
			return a.HasTime
		}

		if a.HasTime {
			minA, minB := calendar.MinutesSinceMidnight(a.Start), calendar.MinutesSinceMidnight(b.Start)
			if minA != minB {
				return minA < minB
			}
		}

		return a.SortIndex < b.SortIndex
	})
	return sorted
}
