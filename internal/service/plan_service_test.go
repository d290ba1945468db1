package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/planboard/internal/importer"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPlanService(t *testing.T) (PlanService, repository.PlanRepo, *recordingObserver) {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	imports := repository.NewSQLiteImportLogRepo(database)
	obs := &recordingObserver{}
	return NewPlanService(plans, imports, testutil.NewTestUoW(database), obs), plans, obs
}

func validPlanSchema() *importer.PlanSchema {
	return &importer.PlanSchema{
		Tasks: []importer.TaskImport{
			{ID: "t1", Title: "Dentist", Date: "2024-03-05", Category: "Health"},
			{Title: "Someday"},
		},
		Events: []importer.EventImport{
			{Title: "Standup", Start: "2024-03-04T09:00", End: "2024-03-04T10:00"},
		},
		Defaults: &importer.DefaultsImport{
			Daily: &importer.DefaultImport{Title: "Default: Read 20 pages"},
		},
	}
}

func writePlanFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlanService_ImportSchema(t *testing.T) {
	svc, plans, obs := setupPlanService(t)
	ctx := context.Background()

	result, err := svc.ImportSchema(ctx, validPlanSchema(), "spring", "spring.json")
	require.NoError(t, err)
	assert.Equal(t, 2, result.TaskCount)
	assert.Equal(t, 1, result.EventCount)
	assert.Equal(t, 1, result.UndatedTasks)
	assert.False(t, result.Replaced)

	stored, err := plans.GetByName(ctx, "spring")
	require.NoError(t, err)
	assert.Equal(t, result.Plan.ID, stored.ID)
	assert.Equal(t, "json", stored.Format)
	assert.Equal(t, "Dentist", stored.Document.Tasks[0].Title)
	assert.NotEmpty(t, stored.Document.Tasks[1].ID)

	event := obs.last(t)
	assert.Equal(t, "import-plan", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, "spring", event.Fields["plan"])
	assert.Equal(t, 1, event.Fields["undated_tasks"])
	assert.Equal(t, false, event.Fields["replaced"])
}

func TestPlanService_ReimportReplaces(t *testing.T) {
	svc, _, _ := setupPlanService(t)
	ctx := context.Background()

	first, err := svc.ImportSchema(ctx, validPlanSchema(), "spring", "spring.json")
	require.NoError(t, err)

	schema := validPlanSchema()
	schema.Tasks = schema.Tasks[:1]
	second, err := svc.ImportSchema(ctx, schema, "spring", "spring.yaml")
	require.NoError(t, err)
	assert.True(t, second.Replaced)
	assert.Equal(t, first.Plan.ID, second.Plan.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].TaskCount)
	assert.Equal(t, "yaml", all[0].Format)

	history, err := svc.History(ctx, "spring")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "spring.yaml", history[0].SourcePath)
	assert.Equal(t, "spring.json", history[1].SourcePath)
}

func TestPlanService_ValidationFailureStoresNothing(t *testing.T) {
	svc, plans, obs := setupPlanService(t)
	ctx := context.Background()

	schema := validPlanSchema()
	schema.Events[0].Start = "2024-03-04T9am"
	schema.Tasks[0].Title = ""

	_, err := svc.ImportSchema(ctx, schema, "spring", "spring.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan validation failed (2 errors)")
	assert.Contains(t, err.Error(), "events[0].start")

	all, err := plans.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.False(t, obs.last(t).Success)
}

func TestPlanService_NameRequired(t *testing.T) {
	svc, _, _ := setupPlanService(t)

	_, err := svc.ImportSchema(context.Background(), validPlanSchema(), "  ", "")
	assert.ErrorContains(t, err, "plan name is required")
}

func TestPlanService_ImportFileDerivesName(t *testing.T) {
	svc, _, _ := setupPlanService(t)
	ctx := context.Background()

	path := writePlanFile(t, "weekly.yaml", `tasks:
  - title: Groceries
    date: "2024-03-05"
`)
	result, err := svc.Import(ctx, path, "")
	require.NoError(t, err)
	assert.Equal(t, "weekly", result.Plan.Name)
	assert.Equal(t, "yaml", result.Plan.Format)
	assert.Equal(t, path, result.Plan.SourcePath)

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "weekly", latest.Name)
}

func TestPlanService_ImportMissingFile(t *testing.T) {
	svc, _, _ := setupPlanService(t)

	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "x")
	assert.ErrorContains(t, err, "loading plan file")
}

func TestPlanService_Load(t *testing.T) {
	svc, plans, _ := setupPlanService(t)
	ctx := context.Background()

	path := writePlanFile(t, "plan.json", `{"tasks":[{"title":"Dentist","date":"2024-03-05"}]}`)
	doc, err := svc.Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 1)

	all, err := plans.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "load does not store")

	bad := writePlanFile(t, "bad.json", `{"events":[{"title":"x","start":"nope","end":"2024-03-05"}]}`)
	_, err = svc.Load(ctx, bad)
	assert.ErrorContains(t, err, "plan validation failed")
}

func TestPlanService_GetAndDelete(t *testing.T) {
	svc, _, obs := setupPlanService(t)
	ctx := context.Background()

	_, err := svc.ImportSchema(ctx, validPlanSchema(), "spring", "spring.json")
	require.NoError(t, err)

	got, err := svc.Get(ctx, "spring")
	require.NoError(t, err)
	assert.Equal(t, "spring", got.Name)

	require.NoError(t, svc.Delete(ctx, "spring"))
	assert.Equal(t, "delete-plan", obs.last(t).Name)

	_, err = svc.Get(ctx, "spring")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.History(ctx, "spring")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, "spring")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, obs.last(t).Success)
}
