package domain

import "time"

// PlannerItem is a task or event normalized onto a concrete interval.
// Items are built once per plan load and never mutated afterwards.
type PlannerItem struct {
	ID        string // task id; empty for events
	Title     string
	Start     time.Time
	End       time.Time
	Source    ItemSource
	HasTime   bool
	SortIndex int
	Category  string
	WeekTheme string
}

// ExecutionTask is one row of a summary panel or execution section: either
// an explicit item or the synthetic default marker.
type ExecutionTask struct {
	Title     string
	IsDefault bool
	HasTime   bool
	Start     time.Time
	End       time.Time
	SortIndex int
	Category  string
}

// SummaryPanel is the roll-up for one week or month window.
type SummaryPanel struct {
	Title       string
	Count       int
	Description string
	Tasks       []ExecutionTask
}

// ExecutionSection is the task list for one standing day.
type ExecutionSection struct {
	Title string
	Date  time.Time
	Tasks []ExecutionTask
}

// CalendarEvent is the whole-calendar projection of a planner item.
type CalendarEvent struct {
	Title    string
	Start    time.Time
	End      time.Time
	Category string
	HasTime  bool
}
