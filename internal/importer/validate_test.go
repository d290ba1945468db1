package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/stretchr/testify/assert"
)

func ptrInt(i int) *int { return &i }

func validMinimalSchema() *PlanSchema {
	return &PlanSchema{
		Tasks: []TaskImport{
			{ID: "t1", Title: "Dentist", Date: "2024-03-05"},
		},
		Events: []EventImport{
			{Title: "Standup", Start: "2024-03-04T09:00", End: "2024-03-04T10:00"},
		},
	}
}

func TestValidatePlanSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidatePlanSchema(validMinimalSchema()))
}

func TestValidatePlanSchema_EmptyPlan(t *testing.T) {
	assert.Empty(t, ValidatePlanSchema(&PlanSchema{}))
}

func TestValidatePlanSchema_UndatedTasksAreNotErrors(t *testing.T) {
	schema := &PlanSchema{Tasks: []TaskImport{
		{Title: "Someday"},
		{Title: "Typo", Date: "2024-13-45"},
		{Title: "Dated", Date: "2024-03-05"},
	}}
	assert.Empty(t, ValidatePlanSchema(schema))
	assert.Equal(t, 2, UndatedTasks(schema))
}

func TestValidatePlanSchema_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *PlanSchema)
		wantMsg string
	}{
		{"task title", func(s *PlanSchema) { s.Tasks[0].Title = "" }, "tasks[0].title is required"},
		{"duplicate id", func(s *PlanSchema) {
			s.Tasks = append(s.Tasks, TaskImport{ID: "t1", Title: "Again", Date: "2024-03-06"})
		}, `tasks[1].id: duplicate id "t1"`},
		{"malformed task start", func(s *PlanSchema) { s.Tasks[0].Start = "2024-03-05T9am" }, "tasks[0].start"},
		{"malformed task end", func(s *PlanSchema) { s.Tasks[0].End = "tomorrow" }, "tasks[0].end"},
		{"negative duration", func(s *PlanSchema) { s.Tasks[0].Duration = ptrInt(-5) }, "tasks[0].duration must not be negative"},
		{"event title", func(s *PlanSchema) { s.Events[0].Title = "" }, "events[0].title is required"},
		{"event start missing", func(s *PlanSchema) { s.Events[0].Start = "" }, "events[0].start is required"},
		{"event end missing", func(s *PlanSchema) { s.Events[0].End = "" }, "events[0].end is required"},
		{"event end malformed", func(s *PlanSchema) { s.Events[0].End = "2024-03-04 10:00" }, "events[0].end"},
		{"event reversed", func(s *PlanSchema) { s.Events[0].End = "2024-03-04T08:00" }, "events[0]: end"},
		{"negative default duration", func(s *PlanSchema) {
			s.Defaults = &DefaultsImport{Weekly: &DefaultImport{Title: "x", DurationMinutes: ptrInt(-1)}}
		}, "defaults.weekly: duration must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validMinimalSchema()
			tt.mutate(schema)
			errs := ValidatePlanSchema(schema)
			assert.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if strings.Contains(e.Error(), tt.wantMsg) {
					found = true
				}
			}
			assert.True(t, found, "expected error containing %q, got %v", tt.wantMsg, errs)
		})
	}
}

func TestValidatePlanSchema_MalformedWrapsInvalidDate(t *testing.T) {
	schema := validMinimalSchema()
	schema.Events[0].Start = "not-a-date"
	errs := ValidatePlanSchema(schema)
	assert.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], calendar.ErrInvalidDate))
}

func TestValidatePlanSchema_CollectsEveryProblem(t *testing.T) {
	schema := &PlanSchema{
		Tasks:  []TaskImport{{Date: "2024-03-05", Start: "bad"}},
		Events: []EventImport{{}},
	}
	// title + start on the task, title + start + end on the event
	assert.Len(t, ValidatePlanSchema(schema), 5)
}
