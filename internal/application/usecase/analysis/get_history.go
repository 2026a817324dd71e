package analysis

import (
	"context"
	"time"

	"github.com/financial-coach/backend/internal/domain/coach"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// GetHistoryInput represents the input for the savings history view.
type GetHistoryInput struct {
	View           string
	ExcludeCurrent bool
	Now            time.Time
}

// GetHistoryOutput represents the output of the savings history view.
type GetHistoryOutput struct {
	View    coach.HistoryView
	Goal    coach.Goal
	HasGoal bool
	Periods []coach.Period
}

// GetHistoryUseCase buckets spend into monthly or quarterly savings periods.
type GetHistoryUseCase struct {
	evaluator *Evaluator
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(evaluator *Evaluator) *GetHistoryUseCase {
	return &GetHistoryUseCase{evaluator: evaluator}
}

// Execute builds the history periods.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	view, err := ParseHistoryView(input.View)
	if err != nil {
		return nil, err
	}

	inputs, err := uc.evaluator.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	periods := uc.evaluator.Engine().History(ctx, inputs.Transactions, inputs.Goal, view, now, input.ExcludeCurrent)

	return &GetHistoryOutput{
		View:    view,
		Goal:    inputs.Goal,
		HasGoal: inputs.HasGoal,
		Periods: periods,
	}, nil
}

// ParseHistoryView parses the view query parameter. Empty means monthly.
func ParseHistoryView(view string) (coach.HistoryView, error) {
	switch coach.HistoryView(view) {
	case "", coach.HistoryMonthly:
		return coach.HistoryMonthly, nil
	case coach.HistoryQuarterly:
		return coach.HistoryQuarterly, nil
	default:
		return "", domainerror.NewAnalysisError(
			domainerror.ErrCodeInvalidHistoryView,
			"view must be 'monthly' or 'quarterly'",
			domainerror.ErrInvalidHistoryView,
		)
	}
}
