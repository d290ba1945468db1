package contract

import "github.com/alexanderramin/planboard/internal/app"

type BoardRequest = app.BoardRequest

func NewBoardRequest() BoardRequest {
	return app.NewBoardRequest()
}

type BoardResponse = app.BoardResponse

type BoardErrorCode = app.BoardErrorCode

const (
	BoardErrNoPlan      BoardErrorCode = app.BoardErrNoPlan
	BoardErrInvalidPlan BoardErrorCode = app.BoardErrInvalidPlan
)

type BoardError = app.BoardError
