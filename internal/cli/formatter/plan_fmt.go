package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/domain"
)

// FormatImportResult summarizes a stored import.
func FormatImportResult(res *contract.ImportResult) string {
	verb := "Imported"
	if res.Replaced {
		verb = "Replaced"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s plan %s\n", StyleGreen.Render(verb), Bold(res.Plan.Name))
	fmt.Fprintf(&b, "  %s  %s\n", Dim("source"), res.Plan.SourcePath)
	fmt.Fprintf(&b, "  %s   %s, %s\n", Dim("items"), CountLabel(res.TaskCount), pluralize(res.EventCount, "event", "events"))
	if res.UndatedTasks > 0 {
		b.WriteString("  ")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%s without a valid date will not appear on the board", CountLabel(res.UndatedTasks))))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPlanList renders stored plans as a table with update times relative
// to now.
func FormatPlanList(plans []*domain.StoredPlan, now time.Time) string {
	if len(plans) == 0 {
		return Dim("No plans imported.") + "\n"
	}

	headers := []string{"ID", "NAME", "FORMAT", "TASKS", "EVENTS", "UPDATED"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			Dim(p.Format),
			fmt.Sprintf("%d", p.TaskCount),
			fmt.Sprintf("%d", p.EventCount),
			HumanTimestampFrom(p.UpdatedAt, now),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPlanHistory renders the import log of one plan, newest first.
func FormatPlanHistory(name string, records []*domain.ImportRecord, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("History: " + name))
	b.WriteString("\n")
	if len(records) == 0 {
		b.WriteString(Dim("No imports recorded."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"#", "SOURCE", "TASKS", "EVENTS", "IMPORTED"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", r.ID)),
			r.SourcePath,
			fmt.Sprintf("%d", r.TaskCount),
			fmt.Sprintf("%d", r.EventCount),
			HumanTimestampFrom(r.ImportedAt, now),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatPlanDetail renders a stored plan's metadata in a box above its
// serialized document.
func FormatPlanDetail(p *domain.StoredPlan, document string) string {
	meta := strings.Join([]string{
		Dim("id       ") + p.ID,
		Dim("source   ") + p.SourcePath,
		Dim("format   ") + p.Format,
		Dim("items    ") + CountLabel(p.TaskCount) + ", " + pluralize(p.EventCount, "event", "events"),
		Dim("imported ") + p.ImportedAt.Local().Format("2006-01-02 15:04"),
		Dim("updated  ") + p.UpdatedAt.Local().Format("2006-01-02 15:04"),
	}, "\n")
	return RenderBox(p.Name, meta) + "\n\n" + document
}
