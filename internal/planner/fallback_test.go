package planner

import (
	"testing"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultTitle_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		defaults domain.Defaults
		want     string
	}{
		{"none", domain.Defaults{}, BuiltinDefaultTitle},
		{"monthly only", domain.Defaults{Monthly: &domain.DefaultConfig{Title: "Budget review"}}, "Budget review"},
		{"weekly beats monthly", domain.Defaults{
			Weekly:  &domain.DefaultConfig{Title: "Plan the week"},
			Monthly: &domain.DefaultConfig{Title: "Budget review"},
		}, "Plan the week"},
		{"daily wins", domain.Defaults{
			Daily:  &domain.DefaultConfig{Title: "Read 20 pages"},
			Weekly: &domain.DefaultConfig{Title: "Plan the week"},
		}, "Read 20 pages"},
		{"empty daily title is skipped", domain.Defaults{
			Daily:  &domain.DefaultConfig{},
			Weekly: &domain.DefaultConfig{Title: "Plan the week"},
		}, "Plan the week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDefaultTitle(tt.defaults))
		})
	}
}

func TestNormalizeDefaultTitle(t *testing.T) {
	assert.Equal(t, "Read 20 pages", NormalizeDefaultTitle("Default: Read 20 pages"))
	assert.Equal(t, "Read 20 pages", NormalizeDefaultTitle("DEFAULT:Read 20 pages"))
	assert.Equal(t, "Read 20 pages", NormalizeDefaultTitle("default:   Read 20 pages"))
	assert.Equal(t, "Not a Default: prefix", NormalizeDefaultTitle("Not a Default: prefix"))
	assert.Equal(t, "Walk", NormalizeDefaultTitle("Walk"))
}

func TestBuildExecutionTasks_ExplicitItem(t *testing.T) {
	day := calendar.DayRange(testutil.Day(2024, 3, 5))
	items := []domain.PlannerItem{
		{Title: "Dentist", Start: day.Start, End: day.End, Category: "Health", SortIndex: 3},
	}

	got := BuildExecutionTasks(items, day, BuiltinDefaultTitle)
	require.Len(t, got, 1)
	assert.Equal(t, "Dentist", got[0].Title)
	assert.False(t, got[0].IsDefault)
	assert.False(t, got[0].HasTime)
	assert.Equal(t, 3, got[0].SortIndex)
	assert.Equal(t, "Health", got[0].Category)
	assert.Equal(t, day.Start, got[0].Start)
}

func TestBuildExecutionTasks_FallbackStripsPrefix(t *testing.T) {
	day := calendar.DayRange(testutil.Day(2024, 3, 6))

	got := BuildExecutionTasks(nil, day, "Default: Read 20 pages")
	require.Len(t, got, 1)
	assert.Equal(t, domain.ExecutionTask{Title: "Read 20 pages", IsDefault: true}, got[0])
}

func TestBuildExecutionTasks_DefaultMarkerExclusive(t *testing.T) {
	base := testutil.Day(2024, 3, 4)
	items := []domain.PlannerItem{
		{Title: "a", Start: base, End: calendar.EndOfDay(base)},
		{Title: "b", Start: base.Add(36 * time.Hour), End: base.Add(37 * time.Hour)},
	}
	for offset := 0; offset < 4; offset++ {
		got := BuildExecutionTasks(items, calendar.DayRange(calendar.AddDays(base, offset)), "x")
		defaults := 0
		for _, task := range got {
			if task.IsDefault {
				defaults++
			}
		}
		explicit := len(ItemsInRange(items, calendar.DayRange(calendar.AddDays(base, offset))))
		if explicit == 0 {
			assert.Equal(t, 1, defaults, "day %d", offset)
			assert.Len(t, got, 1)
		} else {
			assert.Equal(t, 0, defaults, "day %d", offset)
			assert.Len(t, got, explicit)
		}
	}
}

func TestBuildSummaryTasks(t *testing.T) {
	got := BuildSummaryTasks(nil, "Plan the week")
	assert.Equal(t, []domain.ExecutionTask{{Title: "Plan the week", IsDefault: true}}, got)

	got = BuildSummaryTasks([]domain.PlannerItem{{Title: "Trip", HasTime: true}}, "Plan the week")
	require.Len(t, got, 1)
	assert.Equal(t, "Trip", got[0].Title)
	assert.True(t, got[0].HasTime)
}

func TestWeekTheme_FirstTaskTheme(t *testing.T) {
	items := []domain.PlannerItem{
		{Title: "Event", Source: domain.SourceEvent, WeekTheme: "ignored"},
		{Title: "Plain", Source: domain.SourceTask},
		{Title: "Themed", Source: domain.SourceTask, WeekTheme: "Deep work"},
		{Title: "Later", Source: domain.SourceTask, WeekTheme: "Rest"},
	}
	assert.Equal(t, "Deep work", WeekTheme(items))
	assert.Equal(t, "", WeekTheme(nil))
}
