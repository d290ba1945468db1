package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

const planColumns = `id, name, source_path, format, document, task_count, event_count, imported_at, updated_at`

func (r *SQLitePlanRepo) Upsert(ctx context.Context, p *domain.StoredPlan) error {
	doc, err := json.Marshal(p.Document)
	if err != nil {
		return fmt.Errorf("encoding plan document: %w", err)
	}

	query := `INSERT INTO plans (` + planColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			source_path = excluded.source_path,
			format      = excluded.format,
			document    = excluded.document,
			task_count  = excluded.task_count,
			event_count = excluded.event_count,
			updated_at  = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.SourcePath,
		domain.CoalesceStr(p.Format, "json"),
		string(doc),
		p.TaskCount,
		p.EventCount,
		formatTimestamp(p.ImportedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting plan: %w", err)
	}

	stored, err := r.GetByName(ctx, p.Name)
	if err != nil {
		return fmt.Errorf("reloading plan: %w", err)
	}
	*p = *stored
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.StoredPlan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id)
	return scanPlanRow(row)
}

func (r *SQLitePlanRepo) GetByName(ctx context.Context, name string) (*domain.StoredPlan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE name = ?`, name)
	return scanPlanRow(row)
}

func (r *SQLitePlanRepo) GetLatest(ctx context.Context) (*domain.StoredPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+planColumns+` FROM plans ORDER BY updated_at DESC, name LIMIT 1`)
	return scanPlanRow(row)
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.StoredPlan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.StoredPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %q: %w", name, ErrNotFound)
	}
	return nil
}

func scanPlanRow(row *sql.Row) (*domain.StoredPlan, error) {
	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	return p, nil
}

func scanPlan(s scanner) (*domain.StoredPlan, error) {
	var p domain.StoredPlan
	var doc, importedAt, updatedAt string
	err := s.Scan(
		&p.ID, &p.Name, &p.SourcePath, &p.Format,
		&doc, &p.TaskCount, &p.EventCount,
		&importedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(doc), &p.Document); err != nil {
		return nil, fmt.Errorf("decoding plan document: %w", err)
	}
	if p.ImportedAt, err = parseTimestamp("imported_at", importedAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
