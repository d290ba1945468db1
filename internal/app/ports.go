package app

import (
	"context"

	"github.com/alexanderramin/planboard/internal/importer"
)

type BoardUseCase interface {
	Board(ctx context.Context, req BoardRequest) (*BoardResponse, error)
}

type ImportPlanUseCase interface {
	Import(ctx context.Context, path, name string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.PlanSchema, name, source string) (*ImportResult, error)
}
