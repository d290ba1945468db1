package app

import "github.com/alexanderramin/planboard/internal/domain"

// ImportResult holds the outcome of a plan import.
type ImportResult struct {
	Plan         *domain.StoredPlan
	TaskCount    int
	EventCount   int
	UndatedTasks int
	Replaced     bool
}
