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

func TestNormalize_SortIndexTasksThenEvents(t *testing.T) {
	doc := testutil.NewTestPlan(
		testutil.WithEvents(
			testutil.NewTestEvent("Standup", "2024-03-04T09:00", "2024-03-04T09:15"),
			testutil.NewTestEvent("Retro", "2024-03-08T16:00", "2024-03-08T17:00"),
		),
		testutil.WithTasks(
			testutil.NewTestTask("Dentist", "2024-03-05"),
			testutil.NewTestTask("Someday", ""),
			testutil.NewTestTask("Groceries", "2024-03-06"),
		),
	)

	items, skipped, err := Normalize(doc, time.UTC)
	require.NoError(t, err)
	require.Len(t, items, 4)

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
		assert.Equal(t, i, item.SortIndex)
	}
	assert.Equal(t, []string{"Dentist", "Groceries", "Standup", "Retro"}, titles)
	assert.Equal(t, domain.SourceTask, items[1].Source)
	assert.Equal(t, domain.SourceEvent, items[2].Source)

	require.Len(t, skipped, 1)
	assert.Equal(t, "Someday", skipped[0].Title)
	assert.Equal(t, SkipMissingDate, skipped[0].Reason)
}

func TestNormalize_AllDayTaskExpandsToWholeDay(t *testing.T) {
	doc := testutil.NewTestPlan(testutil.WithTasks(testutil.NewTestTask("Dentist", "2024-03-05")))

	items, _, err := Normalize(doc, time.UTC)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, testutil.Day(2024, 3, 5), items[0].Start)
	assert.Equal(t, calendar.EndOfDay(testutil.Day(2024, 3, 5)), items[0].End)
	assert.False(t, items[0].HasTime)
}

func TestNormalize_StartEndOverrideDate(t *testing.T) {
	doc := testutil.NewTestPlan(testutil.WithTasks(
		testutil.NewTestTask("Trip", "2024-03-05", testutil.WithEnd("2024-03-07")),
		testutil.NewTestTask("Call", "2024-03-05", testutil.WithStart("2024-03-05T14:30")),
	))

	items, _, err := Normalize(doc, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, testutil.Day(2024, 3, 5), items[0].Start)
	assert.Equal(t, calendar.EndOfDay(testutil.Day(2024, 3, 7)), items[0].End)
	assert.False(t, items[0].HasTime)

	assert.Equal(t, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), items[1].Start)
	assert.Equal(t, calendar.EndOfDay(testutil.Day(2024, 3, 5)), items[1].End)
	assert.True(t, items[1].HasTime, "a time on either boundary marks the item as timed")
}

func TestNormalize_InvalidTaskDateIsSkipped(t *testing.T) {
	doc := testutil.NewTestPlan(testutil.WithTasks(
		testutil.NewTestTask("Bad", "next tuesday"),
		testutil.NewTestTask("Good", "2024-03-05"),
	))

	items, skipped, err := Normalize(doc, time.UTC)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].SortIndex, "skipped tasks do not consume a sort index")

	require.Len(t, skipped, 1)
	assert.Equal(t, SkipInvalidDate, skipped[0].Reason)
	assert.Equal(t, 0, skipped[0].Index)
}

func TestNormalize_MalformedTimestampPropagates(t *testing.T) {
	doc := testutil.NewTestPlan(testutil.WithTasks(
		testutil.NewTestTask("Call", "2024-03-05", testutil.WithTaskID("call-1"), testutil.WithStart("2024-03-05T2pm")),
	))

	_, _, err := Normalize(doc, time.UTC)
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	assert.Contains(t, err.Error(), "call-1")
	assert.Contains(t, err.Error(), "start")
}

func TestNormalize_EventMissingBoundaryFails(t *testing.T) {
	doc := testutil.NewTestPlan(testutil.WithEvents(
		testutil.NewTestEvent("Open ended", "2024-03-05T10:00", ""),
	))

	_, _, err := Normalize(doc, time.UTC)
	require.Error(t, err)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	assert.Contains(t, err.Error(), "Open ended")
}

func TestNormalize_DateOnlyEventIsUntimed(t *testing.T) {
	doc := testutil.NewTestPlan(testutil.WithEvents(
		testutil.NewTestEvent("Conference", "2024-03-05", "2024-03-06", testutil.WithEventCategory("Work")),
	))

	items, _, err := Normalize(doc, time.UTC)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].HasTime)
	assert.Equal(t, calendar.EndOfDay(testutil.Day(2024, 3, 6)), items[0].End)
	assert.Equal(t, "Work", items[0].Category)
}
