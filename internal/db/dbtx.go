package db

import (
	"context"
	"database/sql"
)

// DBTX is what repositories query through: the *sql.DB for standalone
// reads, or the *sql.Tx handed out by a UnitOfWork for an import.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
