package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/planboard/internal/app"
	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBoardService(t *testing.T) (BoardService, repository.PlanRepo, *recordingObserver) {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	obs := &recordingObserver{}
	return NewBoardService(plans, obs), plans, obs
}

func boardRequest(selected, today time.Time) app.BoardRequest {
	req := app.NewBoardRequest()
	req.Location = time.UTC
	req.SelectedDate = &selected
	req.Today = &today
	return req
}

func TestBoardService_UsesLatestStoredPlan(t *testing.T) {
	svc, plans, obs := setupBoardService(t)
	ctx := context.Background()

	older := testutil.NewTestStoredPlan("older", testutil.NewTestPlan(
		testutil.WithTasks(testutil.NewTestTask("Old task", "2024-03-05")),
	))
	older.UpdatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, plans.Upsert(ctx, older))

	newer := testutil.NewTestStoredPlan("newer", testutil.NewTestPlan(
		testutil.WithTasks(testutil.NewTestTask("Dentist", "2024-03-05")),
		testutil.WithDailyDefault("Default: Read 20 pages"),
	))
	newer.UpdatedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, plans.Upsert(ctx, newer))

	day := testutil.Day(2024, 3, 5)
	resp, err := svc.Board(ctx, boardRequest(day, day))
	require.NoError(t, err)

	assert.Equal(t, "newer", resp.PlanName)
	assert.Equal(t, "Default: Read 20 pages", resp.DefaultTitle)
	sections := resp.Board.ExecutionSections
	require.Len(t, sections, 3)
	assert.Equal(t, "Today", sections[0].Title)
	assert.Equal(t, "Dentist", sections[0].Tasks[0].Title)
	assert.Equal(t, []domain.ExecutionTask{{Title: "Read 20 pages", IsDefault: true}}, sections[1].Tasks)

	event := obs.last(t)
	assert.Equal(t, "board", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, "newer", event.Fields["plan"])
	assert.Equal(t, "2024-03-05", event.Fields["selected_date"])
	assert.Equal(t, "2024-03-04..2024-03-10", event.Fields["this_week_range"])
	assert.Equal(t, false, event.Fields["today_fallback"])
	assert.Equal(t, true, event.Fields["tomorrow_fallback"])
}

func TestBoardService_NamedPlan(t *testing.T) {
	svc, plans, _ := setupBoardService(t)
	ctx := context.Background()

	require.NoError(t, plans.Upsert(ctx, testutil.NewTestStoredPlan("home", testutil.NewTestPlan(
		testutil.WithTasks(testutil.NewTestTask("Laundry", "2024-03-05")),
	))))
	require.NoError(t, plans.Upsert(ctx, testutil.NewTestStoredPlan("work", nil)))

	req := boardRequest(testutil.Day(2024, 3, 5), testutil.Day(2024, 3, 5))
	req.PlanName = "home"
	resp, err := svc.Board(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "home", resp.PlanName)
	assert.Equal(t, "Laundry", resp.Board.ExecutionSections[0].Tasks[0].Title)
}

func TestBoardService_NoPlan(t *testing.T) {
	svc, _, obs := setupBoardService(t)
	ctx := context.Background()

	_, err := svc.Board(ctx, boardRequest(testutil.Day(2024, 3, 5), testutil.Day(2024, 3, 5)))
	var boardErr *app.BoardError
	require.True(t, errors.As(err, &boardErr))
	assert.Equal(t, app.BoardErrNoPlan, boardErr.Code)
	assert.Contains(t, boardErr.Message, "planboard import")
	assert.False(t, obs.last(t).Success)

	req := boardRequest(testutil.Day(2024, 3, 5), testutil.Day(2024, 3, 5))
	req.PlanName = "missing"
	_, err = svc.Board(ctx, req)
	require.True(t, errors.As(err, &boardErr))
	assert.Equal(t, app.BoardErrNoPlan, boardErr.Code)
	assert.Contains(t, boardErr.Message, `"missing"`)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBoardService_SuppliedPlanBypassesStorage(t *testing.T) {
	svc, _, _ := setupBoardService(t)

	req := boardRequest(testutil.Day(2024, 3, 6), testutil.Day(2024, 3, 5))
	req.Plan = testutil.NewTestPlan(testutil.WithTasks(
		testutil.NewTestTask("Gym", "2024-03-06"),
		testutil.NewTestTask("Someday", ""),
	))
	req.PlanName = "plan.json"

	resp, err := svc.Board(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "plan.json", resp.PlanName)
	assert.False(t, resp.Board.IsToday)
	assert.Equal(t, "Wed, Mar 6", resp.Board.ExecutionSections[0].Title)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "Someday", resp.Skipped[0].Title)
}

func TestBoardService_InvalidPlan(t *testing.T) {
	svc, _, _ := setupBoardService(t)

	req := boardRequest(testutil.Day(2024, 3, 5), testutil.Day(2024, 3, 5))
	req.Plan = testutil.NewTestPlan(testutil.WithEvents(
		testutil.NewTestEvent("Broken", "2024-03-05T25:99", "2024-03-05T26:00"),
	))

	_, err := svc.Board(context.Background(), req)
	var boardErr *app.BoardError
	require.True(t, errors.As(err, &boardErr))
	assert.Equal(t, app.BoardErrInvalidPlan, boardErr.Code)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestBoardService_DefaultsSelectedToToday(t *testing.T) {
	svc, _, _ := setupBoardService(t)

	today := testutil.Day(2024, 3, 5)
	req := app.NewBoardRequest()
	req.Location = time.UTC
	req.Today = &today
	req.Plan = testutil.NewTestPlan()

	resp, err := svc.Board(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Board.IsToday)
	assert.Equal(t, today, resp.Board.SelectedDate)
}
