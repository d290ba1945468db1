package domain

import "time"

// StoredPlan is an imported plan snapshot as kept by the storage layer.
type StoredPlan struct {
	ID         string
	Name       string
	SourcePath string
	Format     string
	Document   PlanDocument
	TaskCount  int
	EventCount int
	ImportedAt time.Time
	UpdatedAt  time.Time
}

// ImportRecord is one entry in a plan's import history.
type ImportRecord struct {
	ID         int64
	PlanID     string
	SourcePath string
	TaskCount  int
	EventCount int
	ImportedAt time.Time
}
