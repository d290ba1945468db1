package app

import (
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
)

// BoardRequest selects a plan and a date to build the board for.
type BoardRequest struct {
	// PlanName picks a stored plan; empty means the most recently updated.
	PlanName string
	// Plan, when set, is used directly and storage is not consulted.
	Plan *domain.PlanDocument
	// SelectedDate defaults to Today.
	SelectedDate *time.Time
	// Today defaults to the wall clock.
	Today    *time.Time
	Location *time.Location
}

func NewBoardRequest() BoardRequest {
	return BoardRequest{Location: time.Local}
}

type BoardResponse struct {
	PlanName     string
	Board        *planner.Board
	Skipped      []planner.SkippedTask
	DefaultTitle string
}

type BoardErrorCode string

const (
	BoardErrNoPlan      BoardErrorCode = "NO_PLAN"
	BoardErrInvalidPlan BoardErrorCode = "INVALID_PLAN"
)

type BoardError struct {
	Code    BoardErrorCode
	Message string
	Err     error
}

func (e *BoardError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *BoardError) Unwrap() error { return e.Err }
