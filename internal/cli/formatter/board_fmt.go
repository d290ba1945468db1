package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

// FormatBoard renders the summary panels, the three execution sections and
// the bucket legend for one board response.
func FormatBoard(resp *contract.BoardResponse) string {
	board := resp.Board
	var b strings.Builder

	b.WriteString(boardTitle(resp))
	b.WriteString("\n\n")

	b.WriteString(Header("Summary"))
	b.WriteString("\n")
	for _, p := range board.SummaryPanels {
		b.WriteString(FormatSummaryPanel(p))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Execution"))
	b.WriteString("\n")
	for _, sec := range board.ExecutionSections {
		b.WriteString(FormatExecutionSection(sec, !board.IsToday))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FormatLegend())
	b.WriteString("\n")

	if len(resp.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(formatSkipped(resp.Skipped))
	}

	return b.String()
}

func boardTitle(resp *contract.BoardResponse) string {
	board := resp.Board
	title := StyleHeader.Render(board.SelectedDate.Format("Monday, Jan 2, 2006"))
	if resp.PlanName != "" {
		title = Bold(resp.PlanName) + Dim(" · ") + title
	}
	if !board.IsToday {
		title += Dim("  (today: " + calendar.FormatDateKey(board.Today) + ")")
	}
	return title
}

// FormatSummaryPanel renders a week or month roll-up: title, count,
// optional description and the task list.
func FormatSummaryPanel(p domain.SummaryPanel) string {
	var b strings.Builder
	b.WriteString(Bold(p.Title))
	b.WriteString("  ")
	b.WriteString(Dim(CountLabel(p.Count)))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString("  ")
		b.WriteString(StylePurple.Render(p.Description))
		b.WriteString("\n")
	}
	for _, t := range p.Tasks {
		b.WriteString("  ")
		b.WriteString(TaskLine(t, false))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatExecutionSection renders one standing day. Tasks are ordered for
// display here; withDate appends the date key to the section title.
func FormatExecutionSection(sec domain.ExecutionSection, withDate bool) string {
	var b strings.Builder
	b.WriteString(Bold(sec.Title))
	if withDate {
		b.WriteString(Dim("  " + calendar.FormatDateKey(sec.Date)))
	}
	b.WriteString("\n")

	if len(sec.Tasks) == 0 {
		b.WriteString("  ")
		b.WriteString(Dim("No tasks scheduled"))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range planner.SortExecutionTasks(sec.Tasks) {
		b.WriteString("  ")
		b.WriteString(TaskLine(t, true))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatLegend renders the bucket legend on one line.
func FormatLegend() string {
	entries := planner.Legend()
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, BucketDot(e.Bucket)+" "+Dim(e.Label))
	}
	return strings.Join(parts, "  ")
}

func formatSkipped(skipped []planner.SkippedTask) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%s not shown:", CountLabel(len(skipped)))))
	b.WriteString("\n")
	for _, s := range skipped {
		title := s.Title
		if title == "" {
			title = fmt.Sprintf("tasks[%d]", s.Index)
		}
		b.WriteString("  ")
		b.WriteString(Dim(fmt.Sprintf("%s (%s)", title, s.Reason)))
		b.WriteString("\n")
	}
	return b.String()
}
