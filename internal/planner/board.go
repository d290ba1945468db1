package planner

import (
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
)

// Summary panel titles, in board order.
const (
	PanelThisWeek  = "This Week"
	PanelNextWeek  = "Next Week"
	PanelWeekAfter = "Week After"
	PanelThisMonth = "This Month"
)

// Execution section titles used when the selected date is the real today.
var relativeDayTitles = [3]string{"Today", "Tomorrow", "Day After Tomorrow"}

// Window identifiers used by AggregationCheck.
const (
	WindowToday     = "today"
	WindowTomorrow  = "tomorrow"
	WindowDayAfter  = "day_after"
	WindowThisWeek  = "this_week"
	WindowNextWeek  = "next_week"
	WindowWeekAfter = "week_after"
	WindowThisMonth = "this_month"
)

var dayWindowIDs = [3]string{WindowToday, WindowTomorrow, WindowDayAfter}

// Snapshot is a normalized plan. Build one per plan load and call Board for
// every selected date; a Snapshot is safe for concurrent readers.
type Snapshot struct {
	doc          *domain.PlanDocument
	loc          *time.Location
	items        []domain.PlannerItem
	skipped      []SkippedTask
	defaultTitle string
}

// NewSnapshot normalizes doc in loc (time.Local when nil).
func NewSnapshot(doc *domain.PlanDocument, loc *time.Location) (*Snapshot, error) {
	if loc == nil {
		loc = time.Local
	}
	if doc == nil {
		doc = &domain.PlanDocument{}
	}
	items, skipped, err := Normalize(doc, loc)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		doc:          doc,
		loc:          loc,
		items:        items,
		skipped:      skipped,
		defaultTitle: ResolveDefaultTitle(doc.Defaults),
	}, nil
}

// Items returns a copy of the normalized items in SortIndex order.
func (s *Snapshot) Items() []domain.PlannerItem {
	out := make([]domain.PlannerItem, len(s.items))
	copy(out, s.items)
	return out
}

// Skipped lists tasks that could not be placed on the timeline.
func (s *Snapshot) Skipped() []SkippedTask {
	out := make([]SkippedTask, len(s.skipped))
	copy(out, s.skipped)
	return out
}

// DefaultTitle is the resolved, unnormalized default action title.
func (s *Snapshot) DefaultTitle() string { return s.defaultTitle }

// Location is the wall-clock location the snapshot was built in.
func (s *Snapshot) Location() *time.Location { return s.loc }

// CalendarEvents projects every item for whole-calendar display.
func (s *Snapshot) CalendarEvents() []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(s.items))
	for _, item := range s.items {
		events = append(events, domain.CalendarEvent{
			Title:    item.Title,
			Start:    item.Start,
			End:      item.End,
			Category: item.Category,
			HasTime:  item.HasTime,
		})
	}
	return events
}

// Board is every view derived from one (snapshot, selected date, today).
type Board struct {
	SelectedDate      time.Time
	Today             time.Time
	IsToday           bool
	Windows           Windows
	SummaryPanels     []domain.SummaryPanel
	ExecutionSections []domain.ExecutionSection
	CalendarEvents    []domain.CalendarEvent
	Check             AggregationCheck
}

// Board computes the standing windows around selected. today is the real
// current date and only decides whether day sections get relative titles.
func (s *Snapshot) Board(selected, today time.Time) *Board {
	selected = anchorDay(selected, s.loc)
	today = anchorDay(today, s.loc)
	windows := StandingWindows(selected)
	isToday := calendar.SameDay(selected, today)

	thisWeek := ItemsInRange(s.items, windows.ThisWeek)
	nextWeek := ItemsInRange(s.items, windows.NextWeek)
	weekAfter := ItemsInRange(s.items, windows.WeekAfter)
	month := ItemsInRange(s.items, windows.Month)

	panels := []domain.SummaryPanel{
		{
			Title:       PanelThisWeek,
			Count:       len(thisWeek),
			Description: s.thisWeekTheme(thisWeek),
			Tasks:       BuildSummaryTasks(thisWeek, s.defaultTitle),
		},
		{
			Title:       PanelNextWeek,
			Count:       len(nextWeek),
			Description: WeekTheme(nextWeek),
			Tasks:       BuildSummaryTasks(nextWeek, s.defaultTitle),
		},
		{
			Title:       PanelWeekAfter,
			Count:       len(weekAfter),
			Description: WeekTheme(weekAfter),
			Tasks:       BuildSummaryTasks(weekAfter, s.defaultTitle),
		},
		{
			Title:       PanelThisMonth,
			Count:       len(month),
			Description: WeekTheme(month),
			Tasks:       BuildSummaryTasks(month, s.defaultTitle),
		},
	}

	sections := make([]domain.ExecutionSection, 0, len(windows.Days))
	for i, day := range windows.Days {
		title := calendar.DayLabel(day.Start)
		if isToday {
			title = relativeDayTitles[i]
		}
		sections = append(sections, domain.ExecutionSection{
			Title: title,
			Date:  day.Start,
			Tasks: BuildExecutionTasks(s.items, day, s.defaultTitle),
		})
	}

	return &Board{
		SelectedDate:      selected,
		Today:             today,
		IsToday:           isToday,
		Windows:           windows,
		SummaryPanels:     panels,
		ExecutionSections: sections,
		CalendarEvents:    s.CalendarEvents(),
		Check:             newAggregationCheck(selected, windows, panels, sections),
	}
}

// thisWeekTheme prefers the weekly goal, then the weekly default, then a
// task theme inside the window.
func (s *Snapshot) thisWeekTheme(items []domain.PlannerItem) string {
	return domain.CoalesceStr(
		s.doc.Goals.Weekly.GoalTitle(),
		s.doc.Defaults.Weekly.DefaultTitle(),
		WeekTheme(items),
	)
}

// AggregationCheck summarizes how each standing window was filled.
type AggregationCheck struct {
	SelectedDate   string
	WeekRanges     map[string][2]string
	ExplicitCounts map[string]int
	FallbackUsed   map[string]bool
}

func newAggregationCheck(selected time.Time, w Windows, panels []domain.SummaryPanel, sections []domain.ExecutionSection) AggregationCheck {
	keys := func(r calendar.Range) [2]string {
		start, end := r.Keys()
		return [2]string{start, end}
	}
	panelIDs := [4]string{WindowThisWeek, WindowNextWeek, WindowWeekAfter, WindowThisMonth}

	check := AggregationCheck{
		SelectedDate: calendar.FormatDateKey(selected),
		WeekRanges: map[string][2]string{
			WindowThisWeek:  keys(w.ThisWeek),
			WindowNextWeek:  keys(w.NextWeek),
			WindowWeekAfter: keys(w.WeekAfter),
		},
		ExplicitCounts: make(map[string]int, len(panels)),
		FallbackUsed:   make(map[string]bool, len(panels)+len(sections)),
	}
	for i, p := range panels {
		check.ExplicitCounts[panelIDs[i]] = p.Count
		check.FallbackUsed[panelIDs[i]] = p.Count == 0
	}
	for i, sec := range sections {
		check.FallbackUsed[dayWindowIDs[i]] = len(sec.Tasks) > 0 && sec.Tasks[0].IsDefault
	}
	return check
}

// Fields flattens the check into log attributes.
func (c AggregationCheck) Fields() map[string]any {
	fields := map[string]any{"selected_date": c.SelectedDate}
	for id, r := range c.WeekRanges {
		fields[id+"_range"] = r[0] + ".." + r[1]
	}
	for id, n := range c.ExplicitCounts {
		fields[id+"_count"] = n
	}
	for id, used := range c.FallbackUsed {
		fields[id+"_fallback"] = used
	}
	return fields
}
