package cli

import (
	"encoding/json"
	"io"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

type boardJSON struct {
	Plan              string            `json:"plan,omitempty"`
	SelectedDate      string            `json:"selectedDate"`
	Today             string            `json:"today"`
	SummaryPanels     []panelJSON       `json:"summaryPanels"`
	ExecutionSections []sectionJSON     `json:"executionSections"`
	CalendarEvents    []calendarJSON    `json:"calendarEvents"`
	Check             checkJSON         `json:"aggregationCheck"`
	Skipped           []skippedTaskJSON `json:"skippedTasks,omitempty"`
}

type panelJSON struct {
	Title       string     `json:"title"`
	Count       int        `json:"count"`
	Description string     `json:"description,omitempty"`
	Tasks       []taskJSON `json:"tasks"`
}

type sectionJSON struct {
	Title string     `json:"title"`
	Date  string     `json:"date"`
	Tasks []taskJSON `json:"tasks"`
}

type taskJSON struct {
	Title     string        `json:"title"`
	IsDefault bool          `json:"isDefault"`
	HasTime   bool          `json:"hasTime"`
	Start     string        `json:"start,omitempty"`
	End       string        `json:"end,omitempty"`
	Category  string        `json:"category,omitempty"`
	Bucket    domain.Bucket `json:"bucket"`
}

type calendarJSON struct {
	Title    string        `json:"title"`
	Start    string        `json:"start"`
	End      string        `json:"end"`
	Category string        `json:"category,omitempty"`
	Bucket   domain.Bucket `json:"bucket"`
}

type checkJSON struct {
	SelectedDate   string               `json:"selectedDate"`
	WeekRanges     map[string][2]string `json:"weekRanges"`
	ExplicitCounts map[string]int       `json:"explicitCounts"`
	FallbackUsed   map[string]bool      `json:"fallbackUsed"`
}

type skippedTaskJSON struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

func boardJSONFrom(resp *contract.BoardResponse) boardJSON {
	b := resp.Board
	out := boardJSON{
		Plan:         resp.PlanName,
		SelectedDate: calendar.FormatDateKey(b.SelectedDate),
		Today:        calendar.FormatDateKey(b.Today),
		Check: checkJSON{
			SelectedDate:   b.Check.SelectedDate,
			WeekRanges:     b.Check.WeekRanges,
			ExplicitCounts: b.Check.ExplicitCounts,
			FallbackUsed:   b.Check.FallbackUsed,
		},
	}

	for _, p := range b.SummaryPanels {
		out.SummaryPanels = append(out.SummaryPanels, panelJSON{
			Title:       p.Title,
			Count:       p.Count,
			Description: p.Description,
			Tasks:       tasksJSON(p.Tasks),
		})
	}
	for _, sec := range b.ExecutionSections {
		out.ExecutionSections = append(out.ExecutionSections, sectionJSON{
			Title: sec.Title,
			Date:  calendar.FormatDateKey(sec.Date),
			Tasks: tasksJSON(planner.SortExecutionTasks(sec.Tasks)),
		})
	}
	out.CalendarEvents = make([]calendarJSON, 0, len(b.CalendarEvents))
	for _, e := range b.CalendarEvents {
		out.CalendarEvents = append(out.CalendarEvents, calendarJSON{
			Title:    e.Title,
			Start:    jsonTime(e.Start),
			End:      jsonTime(e.End),
			Category: e.Category,
			Bucket:   planner.EventBucket(e),
		})
	}
	for _, s := range resp.Skipped {
		out.Skipped = append(out.Skipped, skippedTaskJSON{
			Index:  s.Index,
			ID:     s.ID,
			Title:  s.Title,
			Reason: string(s.Reason),
		})
	}
	return out
}

func tasksJSON(tasks []domain.ExecutionTask) []taskJSON {
	out := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		tj := taskJSON{
			Title:     t.Title,
			IsDefault: t.IsDefault,
			HasTime:   t.HasTime,
			Category:  t.Category,
			Bucket:    planner.BucketOf(t),
		}
		if !t.IsDefault {
			tj.Start = jsonTime(t.Start)
			tj.End = jsonTime(t.End)
		}
		out = append(out, tj)
	}
	return out
}

func jsonTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
