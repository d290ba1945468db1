package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
	"github.com/charmbracelet/lipgloss"
)

// CalendarTitleLimit is the rune limit for titles in the calendar list.
const CalendarTitleLimit = 32

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(1).
		PaddingRight(1)

	if title != "" {
		inner := StyleHeader.Render(title) + "\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// CountLabel returns "1 task" or "N tasks".
func CountLabel(n int) string {
	return pluralize(n, "task", "tasks")
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// DefaultLabel renders the fallback marker title with its "Default: " prefix.
func DefaultLabel(title string) string {
	return "Default: " + planner.NormalizeDefaultTitle(title)
}

// TimeRangeLabel returns "HH:MM–HH:MM" in 24h clock.
func TimeRangeLabel(start, end time.Time) string {
	return start.Format("15:04") + "–" + end.Format("15:04")
}

// Truncate shortens s to limit runes, replacing the tail with "…".
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// TaskLine renders one execution or summary row: bucket marker, optional
// time range and title.
func TaskLine(t domain.ExecutionTask, withTime bool) string {
	bucket := planner.BucketOf(t)
	if t.IsDefault {
		return BucketDot(bucket) + " " + Dim(DefaultLabel(t.Title))
	}
	line := BucketDot(bucket) + " "
	if withTime && t.HasTime {
		line += StyleYellow.Render(TimeRangeLabel(t.Start, t.End)) + " "
	}
	return line + StyleFg.Render(t.Title)
}

// EventWhen renders the start of a calendar event as a date key, with the
// clock when the event is timed.
func EventWhen(e domain.CalendarEvent) string {
	if e.HasTime {
		return e.Start.Format("2006-01-02 15:04")
	}
	return calendar.FormatDateKey(e.Start)
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

// HumanTimestampFrom is HumanTimestamp with an explicit reference time.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Local().Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
