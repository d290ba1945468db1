package importer

import (
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated PlanSchema into a domain document. Tasks
// without an id get a generated one. Call ValidatePlanSchema first.
func Convert(schema *PlanSchema) *domain.PlanDocument {
	doc := &domain.PlanDocument{
		Tasks:  make([]domain.Task, 0, len(schema.Tasks)),
		Events: make([]domain.Event, 0, len(schema.Events)),
	}

	for _, t := range schema.Tasks {
		id := t.ID
		if id == "" {
			id = uuid.New().String()
		}
		doc.Tasks = append(doc.Tasks, domain.Task{
			ID:              id,
			Title:           t.Title,
			Date:            t.Date,
			Start:           t.Start,
			End:             t.End,
			Category:        t.Category,
			Tags:            t.Tags,
			WeekTheme:       t.WeekTheme,
			DurationMinutes: t.Duration,
		})
	}

	for _, e := range schema.Events {
		doc.Events = append(doc.Events, domain.Event{
			Title:    e.Title,
			Start:    e.Start,
			End:      e.End,
			Category: e.Category,
			Type:     e.Type,
			Notes:    e.Notes,
		})
	}

	if d := schema.Defaults; d != nil {
		doc.Defaults = domain.Defaults{
			Daily:   convertDefault(d.Daily),
			Weekly:  convertDefault(d.Weekly),
			Monthly: convertDefault(d.Monthly),
		}
	}

	if g := schema.Goals; g != nil {
		doc.Goals = domain.Goals{
			Yearly:  g.Yearly,
			Monthly: convertGoal(g.Monthly),
			Weekly:  convertGoal(g.Weekly),
		}
	}

	return doc
}

// Export is the inverse of Convert, used to print stored plans.
func Export(doc *domain.PlanDocument) *PlanSchema {
	schema := &PlanSchema{Tasks: make([]TaskImport, 0, len(doc.Tasks))}
	for _, t := range doc.Tasks {
		schema.Tasks = append(schema.Tasks, TaskImport{
			ID:        t.ID,
			Title:     t.Title,
			Date:      t.Date,
			Start:     t.Start,
			End:       t.End,
			Category:  t.Category,
			Duration:  t.DurationMinutes,
			Tags:      t.Tags,
			WeekTheme: t.WeekTheme,
		})
	}
	for _, e := range doc.Events {
		schema.Events = append(schema.Events, EventImport(e))
	}
	if d := doc.Defaults; d.Daily != nil || d.Weekly != nil || d.Monthly != nil {
		schema.Defaults = &DefaultsImport{
			Daily:   exportDefault(d.Daily),
			Weekly:  exportDefault(d.Weekly),
			Monthly: exportDefault(d.Monthly),
		}
	}
	if g := doc.Goals; len(g.Yearly) > 0 || g.Monthly != nil || g.Weekly != nil {
		schema.Goals = &GoalsImport{Yearly: g.Yearly}
		if g.Monthly != nil {
			schema.Goals.Monthly = &GoalImport{Title: g.Monthly.Title}
		}
		if g.Weekly != nil {
			schema.Goals.Weekly = &GoalImport{Title: g.Weekly.Title}
		}
	}
	return schema
}

func convertDefault(d *DefaultImport) *domain.DefaultConfig {
	if d == nil {
		return nil
	}
	return &domain.DefaultConfig{
		Title:           d.Title,
		DurationMinutes: domain.FirstIntPtr(d.DurationMinutes, d.Duration),
	}
}

func exportDefault(d *domain.DefaultConfig) *DefaultImport {
	if d == nil {
		return nil
	}
	return &DefaultImport{Title: d.Title, DurationMinutes: d.DurationMinutes}
}

func convertGoal(g *GoalImport) *domain.Goal {
	if g == nil {
		return nil
	}
	return &domain.Goal{Title: g.Title}
}
