package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/app"
	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	plans    repository.PlanRepo
	imports  repository.ImportLogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(
	plans repository.PlanRepo,
	imports repository.ImportLogRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		plans:    plans,
		imports:  imports,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Import(ctx context.Context, path, name string) (*app.ImportResult, error) {
	schema, err := importer.LoadPlanSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading plan file: %w", err)
	}
	return s.ImportSchema(ctx, schema, name, path)
}

func (s *planService) ImportSchema(ctx context.Context, schema *importer.PlanSchema, name, source string) (result *app.ImportResult, err error) {
	name = strings.TrimSpace(name)
	if name == "" && source != "" {
		name = planNameFromPath(source)
	}
	fields := map[string]any{"plan": name, "source": source}
	done := trackUseCase(ctx, s.observer, "import-plan", fields)
	defer func() { done(err) }()

	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	now := time.Now().UTC()
	doc := importer.Convert(schema)
	plan := &domain.StoredPlan{
		ID:         uuid.New().String(),
		Name:       name,
		SourcePath: source,
		Format:     string(importer.FormatForPath(source)),
		Document:   *doc,
		TaskCount:  len(doc.Tasks),
		EventCount: len(doc.Events),
		ImportedAt: now,
		UpdatedAt:  now,
	}
	result = &app.ImportResult{
		Plan:         plan,
		TaskCount:    plan.TaskCount,
		EventCount:   plan.EventCount,
		UndatedTasks: importer.UndatedTasks(schema),
	}
	fields["task_count"] = result.TaskCount
	fields["event_count"] = result.EventCount
	fields["undated_tasks"] = result.UndatedTasks

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txImports := repository.NewSQLiteImportLogRepo(tx)

		if _, err := txPlans.GetByName(ctx, name); err == nil {
			result.Replaced = true
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("checking existing plan: %w", err)
		}

		if err := txPlans.Upsert(ctx, plan); err != nil {
			return fmt.Errorf("storing plan: %w", err)
		}
		return txImports.Append(ctx, &domain.ImportRecord{
			PlanID:     plan.ID,
			SourcePath: source,
			TaskCount:  plan.TaskCount,
			EventCount: plan.EventCount,
			ImportedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	fields["replaced"] = result.Replaced
	return result, nil
}

func (s *planService) Load(ctx context.Context, path string) (*domain.PlanDocument, error) {
	schema, err := importer.LoadPlanSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading plan file: %w", err)
	}
	if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	return importer.Convert(schema), nil
}

func (s *planService) List(ctx context.Context) ([]*domain.StoredPlan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Get(ctx context.Context, name string) (*domain.StoredPlan, error) {
	return s.plans.GetByName(ctx, name)
}

func (s *planService) Latest(ctx context.Context) (*domain.StoredPlan, error) {
	return s.plans.GetLatest(ctx)
}

func (s *planService) History(ctx context.Context, name string) ([]*domain.ImportRecord, error) {
	plan, err := s.plans.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.imports.ListByPlan(ctx, plan.ID)
}

func (s *planService) Delete(ctx context.Context, name string) (err error) {
	done := trackUseCase(ctx, s.observer, "delete-plan", map[string]any{"plan": name})
	defer func() { done(err) }()
	return s.plans.Delete(ctx, name)
}
