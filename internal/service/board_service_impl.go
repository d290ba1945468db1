package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/app"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/planner"
	"github.com/alexanderramin/planboard/internal/repository"
)

type boardService struct {
	plans    repository.PlanRepo
	observer UseCaseObserver
}

func NewBoardService(plans repository.PlanRepo, observers ...UseCaseObserver) BoardService {
	return &boardService{
		plans:    plans,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *boardService) Board(ctx context.Context, req app.BoardRequest) (resp *app.BoardResponse, err error) {
	fields := map[string]any{}
	done := trackUseCase(ctx, s.observer, "board", fields)
	defer func() { done(err) }()

	loc := req.Location
	if loc == nil {
		loc = time.Local
	}
	today := time.Now().In(loc)
	if req.Today != nil {
		today = *req.Today
	}
	selected := today
	if req.SelectedDate != nil {
		selected = *req.SelectedDate
	}

	doc, name, err := s.resolvePlan(ctx, req)
	if err != nil {
		return nil, err
	}
	fields["plan"] = name

	snap, err := planner.NewSnapshot(doc, loc)
	if err != nil {
		return nil, &app.BoardError{
			Code:    app.BoardErrInvalidPlan,
			Message: fmt.Sprintf("plan %q: %v", name, err),
			Err:     err,
		}
	}

	board := snap.Board(selected, today)
	for k, v := range board.Check.Fields() {
		fields[k] = v
	}
	skipped := snap.Skipped()
	fields["skipped_tasks"] = len(skipped)

	return &app.BoardResponse{
		PlanName:     name,
		Board:        board,
		Skipped:      skipped,
		DefaultTitle: snap.DefaultTitle(),
	}, nil
}

func (s *boardService) resolvePlan(ctx context.Context, req app.BoardRequest) (*domain.PlanDocument, string, error) {
	if req.Plan != nil {
		return req.Plan, req.PlanName, nil
	}

	var (
		stored *domain.StoredPlan
		err    error
	)
	if req.PlanName != "" {
		stored, err = s.plans.GetByName(ctx, req.PlanName)
	} else {
		stored, err = s.plans.GetLatest(ctx)
	}
	if errors.Is(err, repository.ErrNotFound) {
		msg := "no plan imported yet; run 'planboard import <file>'"
		if req.PlanName != "" {
			msg = fmt.Sprintf("plan %q not found", req.PlanName)
		}
		return nil, "", &app.BoardError{Code: app.BoardErrNoPlan, Message: msg, Err: err}
	}
	if err != nil {
		return nil, "", fmt.Errorf("loading plan: %w", err)
	}
	return &stored.Document, stored.Name, nil
}
