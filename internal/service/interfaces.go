package service

import (
	"context"

	"github.com/alexanderramin/planboard/internal/app"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
)

type PlanService interface {
	// Import loads, validates and stores the plan file at path under name
	// (the file's base name when empty), replacing any plan with that name.
	Import(ctx context.Context, path, name string) (*app.ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.PlanSchema, name, source string) (*app.ImportResult, error)
	// Load reads and validates a plan file without storing it.
	Load(ctx context.Context, path string) (*domain.PlanDocument, error)
	List(ctx context.Context) ([]*domain.StoredPlan, error)
	Get(ctx context.Context, name string) (*domain.StoredPlan, error)
	Latest(ctx context.Context) (*domain.StoredPlan, error)
	History(ctx context.Context, name string) ([]*domain.ImportRecord, error)
	Delete(ctx context.Context, name string) error
}

type BoardService interface {
	Board(ctx context.Context, req app.BoardRequest) (*app.BoardResponse, error)
}

var (
	_ app.ImportPlanUseCase = PlanService(nil)
	_ app.BoardUseCase      = BoardService(nil)
)
