package repository

import (
	"context"

	"github.com/alexanderramin/planboard/internal/domain"
)

type PlanRepo interface {
	// Upsert stores p under its name. A re-import keeps the original id and
	// ImportedAt; p is updated with the stored values.
	Upsert(ctx context.Context, p *domain.StoredPlan) error
	GetByID(ctx context.Context, id string) (*domain.StoredPlan, error)
	GetByName(ctx context.Context, name string) (*domain.StoredPlan, error)
	GetLatest(ctx context.Context) (*domain.StoredPlan, error)
	List(ctx context.Context) ([]*domain.StoredPlan, error)
	Delete(ctx context.Context, name string) error
}

type ImportLogRepo interface {
	Append(ctx context.Context, rec *domain.ImportRecord) error
	ListByPlan(ctx context.Context, planID string) ([]*domain.ImportRecord, error)
}
