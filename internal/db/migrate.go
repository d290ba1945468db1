package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		source_path TEXT NOT NULL DEFAULT '',
		document    TEXT NOT NULL,
		task_count  INTEGER NOT NULL DEFAULT 0 CHECK(task_count >= 0),
		event_count INTEGER NOT NULL DEFAULT 0 CHECK(event_count >= 0),
		imported_at TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`ALTER TABLE plans ADD COLUMN format TEXT NOT NULL DEFAULT 'json'
		CHECK(format IN ('json','yaml'))`,
	`CREATE TABLE IF NOT EXISTS plan_imports (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		source_path TEXT NOT NULL DEFAULT '',
		task_count  INTEGER NOT NULL DEFAULT 0,
		event_count INTEGER NOT NULL DEFAULT 0,
		imported_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_updated ON plans(updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_imports_plan ON plan_imports(plan_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
