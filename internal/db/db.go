package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath selects a private in-memory store.
const MemoryPath = ":memory:"

// pragmas run on every new handle, in order.
var pragmas = []struct {
	stmt, desc string
}{
	{"PRAGMA journal_mode = WAL", "setting WAL mode"},
	{"PRAGMA foreign_keys = ON", "enabling foreign keys"},
}

// OpenDB opens the plan store at path and brings its schema up to date.
// The parent directory is created for file stores. A MemoryPath store is
// pinned to one connection so every query sees the same database.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		database.SetMaxOpenConns(1)
	}

	if err := prepare(database); err != nil {
		_ = database.Close()
		return nil, err
	}
	return database, nil
}

func prepare(database *sql.DB) error {
	for _, p := range pragmas {
		if _, err := database.Exec(p.stmt); err != nil {
			return fmt.Errorf("%s: %w", p.desc, err)
		}
	}
	if err := Migrate(database); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
