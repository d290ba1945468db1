package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

// SQLiteImportLogRepo implements ImportLogRepo using a SQLite database.
type SQLiteImportLogRepo struct {
	db db.DBTX
}

// NewSQLiteImportLogRepo creates a new SQLiteImportLogRepo.
func NewSQLiteImportLogRepo(conn db.DBTX) *SQLiteImportLogRepo {
	return &SQLiteImportLogRepo{db: conn}
}

func (r *SQLiteImportLogRepo) Append(ctx context.Context, rec *domain.ImportRecord) error {
	query := `INSERT INTO plan_imports (plan_id, source_path, task_count, event_count, imported_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rec.PlanID,
		rec.SourcePath,
		rec.TaskCount,
		rec.EventCount,
		formatTimestamp(rec.ImportedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting import record: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// ListByPlan returns the plan's imports, newest first.
func (r *SQLiteImportLogRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.ImportRecord, error) {
	query := `SELECT id, plan_id, source_path, task_count, event_count, imported_at
		FROM plan_imports WHERE plan_id = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}
	defer rows.Close()

	var records []*domain.ImportRecord
	for rows.Next() {
		var rec domain.ImportRecord
		var importedAt string
		if err := rows.Scan(&rec.ID, &rec.PlanID, &rec.SourcePath, &rec.TaskCount, &rec.EventCount, &importedAt); err != nil {
			return nil, fmt.Errorf("scanning import row: %w", err)
		}
		if rec.ImportedAt, err = parseTimestamp("imported_at", importedAt); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating imports: %w", err)
	}
	return records, nil
}
