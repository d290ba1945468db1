package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory plan store that closes with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test plan store")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns the production UnitOfWork over database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
