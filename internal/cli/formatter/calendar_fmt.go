package formatter

import (
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

// FormatCalendar lists every normalized item for whole-calendar display.
func FormatCalendar(events []domain.CalendarEvent) string {
	if len(events) == 0 {
		return Dim("No events.") + "\n"
	}

	headers := []string{"WHEN", "", "TITLE", "CATEGORY"}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		bucket := planner.EventBucket(e)
		category := e.Category
		if category == "" {
			category = "--"
		}
		rows = append(rows, []string{
			EventWhen(e),
			BucketDot(bucket),
			StyleFg.Render(Truncate(e.Title, CalendarTitleLimit)),
			BucketStyle(bucket).Render(category),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(pluralize(len(events), "entry", "entries")))
	b.WriteString("\n")
	return b.String()
}
