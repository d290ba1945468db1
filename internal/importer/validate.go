package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
)

// ValidatePlanSchema checks the plan document before conversion and returns
// every problem found. A task whose date is missing or malformed is not an
// error; it is simply left off the board (see UndatedTasks).
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	ids := make(map[string]bool)
	for i, t := range schema.Tasks {
		errs = append(errs, validateTask(i, t, ids)...)
	}
	for i, e := range schema.Events {
		errs = append(errs, validateEvent(i, e)...)
	}
	errs = append(errs, validateDefaults(schema.Defaults)...)

	return errs
}

// UndatedTasks counts tasks that will never appear in a window.
func UndatedTasks(schema *PlanSchema) int {
	n := 0
	for _, t := range schema.Tasks {
		if t.Date == "" {
			n++
			continue
		}
		if _, err := calendar.ParseDateKey(t.Date, time.UTC); err != nil {
			n++
		}
	}
	return n
}

func validateTask(i int, t TaskImport, ids map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("tasks[%d]", i)

	if t.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if t.ID != "" {
		if ids[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		}
		ids[t.ID] = true
	}
	errs = append(errs, validateOptionalValue(prefix+".start", t.Start)...)
	errs = append(errs, validateOptionalValue(prefix+".end", t.End)...)
	if t.Duration != nil && *t.Duration < 0 {
		errs = append(errs, fmt.Errorf("%s.duration must not be negative", prefix))
	}

	return errs
}

func validateEvent(i int, e EventImport) []error {
	var errs []error
	prefix := fmt.Sprintf("events[%d]", i)

	if e.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if e.Start == "" {
		errs = append(errs, fmt.Errorf("%s.start is required", prefix))
	}
	if e.End == "" {
		errs = append(errs, fmt.Errorf("%s.end is required", prefix))
	}
	errs = append(errs, validateOptionalValue(prefix+".start", e.Start)...)
	errs = append(errs, validateOptionalValue(prefix+".end", e.End)...)

	if len(errs) == 0 {
		start, _ := calendar.ParseBoundary(e.Start, false, time.UTC)
		end, _ := calendar.ParseBoundary(e.End, true, time.UTC)
		if end.Before(start) {
			errs = append(errs, fmt.Errorf("%s: end %q is before start %q", prefix, e.End, e.Start))
		}
	}

	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error
	periods := []struct {
		name string
		def  *DefaultImport
	}{
		{"daily", d.Daily},
		{"weekly", d.Weekly},
		{"monthly", d.Monthly},
	}
	for _, p := range periods {
		if p.def == nil {
			continue
		}
		for _, v := range []*int{p.def.Duration, p.def.DurationMinutes} {
			if v != nil && *v < 0 {
				errs = append(errs, fmt.Errorf("defaults.%s: duration must not be negative", p.name))
				break
			}
		}
	}
	return errs
}

func validateOptionalValue(field, value string) []error {
	if value == "" {
		return nil
	}
	if _, err := calendar.ParseValue(value, time.UTC); err != nil {
		return []error{fmt.Errorf("%s: %w", field, err)}
	}
	return nil
}
