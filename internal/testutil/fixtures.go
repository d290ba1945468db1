package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/google/uuid"
)

var testTaskCounter atomic.Int64

// Task options
type TaskOption func(*domain.Task)

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithStart(v string) TaskOption {
	return func(t *domain.Task) {
		t.Start = v
	}
}

func WithEnd(v string) TaskOption {
	return func(t *domain.Task) {
		t.End = v
	}
}

func WithCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithWeekTheme(theme string) TaskOption {
	return func(t *domain.Task) {
		t.WeekTheme = theme
	}
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) {
		t.Tags = tags
	}
}

// NewTestTask builds a task on the given date key (may be empty).
func NewTestTask(title, date string, opts ...TaskOption) domain.Task {
	n := testTaskCounter.Add(1)
	t := domain.Task{
		ID:    fmt.Sprintf("task-%03d", n),
		Title: title,
		Date:  date,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Event options
type EventOption func(*domain.Event)

func WithEventCategory(c string) EventOption {
	return func(e *domain.Event) {
		e.Category = c
	}
}

func NewTestEvent(title, start, end string, opts ...EventOption) domain.Event {
	e := domain.Event{Title: title, Start: start, End: end}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Plan options
type PlanOption func(*domain.PlanDocument)

func WithTasks(tasks ...domain.Task) PlanOption {
	return func(p *domain.PlanDocument) {
		p.Tasks = append(p.Tasks, tasks...)
	}
}

func WithEvents(events ...domain.Event) PlanOption {
	return func(p *domain.PlanDocument) {
		p.Events = append(p.Events, events...)
	}
}

func WithDailyDefault(title string) PlanOption {
	return func(p *domain.PlanDocument) {
		p.Defaults.Daily = &domain.DefaultConfig{Title: title}
	}
}

func WithWeeklyDefault(title string) PlanOption {
	return func(p *domain.PlanDocument) {
		p.Defaults.Weekly = &domain.DefaultConfig{Title: title}
	}
}

func WithMonthlyDefault(title string) PlanOption {
	return func(p *domain.PlanDocument) {
		p.Defaults.Monthly = &domain.DefaultConfig{Title: title}
	}
}

func WithWeeklyGoal(title string) PlanOption {
	return func(p *domain.PlanDocument) {
		p.Goals.Weekly = &domain.Goal{Title: title}
	}
}

func NewTestPlan(opts ...PlanOption) *domain.PlanDocument {
	p := &domain.PlanDocument{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestStoredPlan wraps a document as an imported snapshot.
func NewTestStoredPlan(name string, doc *domain.PlanDocument) *domain.StoredPlan {
	now := time.Now().UTC().Truncate(time.Second)
	if doc == nil {
		doc = NewTestPlan()
	}
	return &domain.StoredPlan{
		ID:         uuid.New().String(),
		Name:       name,
		SourcePath: name + ".json",
		Document:   *doc,
		TaskCount:  len(doc.Tasks),
		EventCount: len(doc.Events),
		ImportedAt: now,
		UpdatedAt:  now,
	}
}

// Day returns midnight of the given date in UTC.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
