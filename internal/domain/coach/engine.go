package coach

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// AnalysisInput is everything the engine needs for one evaluation.
type AnalysisInput struct {
	Transactions []RawTransaction
	Goal         Goal
	Window       valueobject.SpendingWindow
	Now          time.Time
}

// Snapshot is the derived view of a transaction set. It is never cached.
type Snapshot struct {
	Needs              decimal.Decimal
	Wants              decimal.Decimal
	Total              decimal.Decimal
	Remaining          decimal.Decimal
	SavingsAmount      decimal.Decimal
	ProgressPercentage decimal.Decimal
	Recommendation     string
	Rewards            Projection
	Goal               Goal
	Window             valueobject.SpendingWindow
	Transactions       []Transaction // window selection, newest first
}

// Engine composes the normalizer, aggregator, calculator, recommender and projector.
type Engine struct {
	normalizer  *Normalizer
	recommender *Recommender
	projector   *Projector
}

// NewEngine wires an Engine from its parts.
func NewEngine(normalizer *Normalizer, recommender *Recommender, projector *Projector) *Engine {
	return &Engine{
		normalizer:  normalizer,
		recommender: recommender,
		projector:   projector,
	}
}

// Normalize exposes the normalizer so callers can reuse normalized transactions.
func (e *Engine) Normalize(ctx context.Context, raws []RawTransaction) []Transaction {
	return e.normalizer.Normalize(ctx, raws)
}

// Projector returns the rewards projector.
func (e *Engine) Projector() *Projector {
	return e.projector
}

// Analyze runs the full pipeline over input.
func (e *Engine) Analyze(ctx context.Context, input AnalysisInput) Snapshot {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	txs := e.normalizer.Normalize(ctx, input.Transactions)
	agg := Aggregate(txs, input.Window, now)
	budget := Calculate(agg.Totals, input.Goal)

	return Snapshot{
		Needs:              agg.Totals.Needs,
		Wants:              agg.Totals.Wants,
		Total:              agg.Totals.Total,
		Remaining:          budget.Remaining,
		SavingsAmount:      budget.SavingsAmount,
		ProgressPercentage: budget.ProgressPercentage,
		Recommendation:     e.recommender.Recommend(agg.Transactions, agg.Totals, input.Goal),
		Rewards:            e.projector.Project(budget.SavingsAmount),
		Goal:               input.Goal,
		Window:             input.Window,
		Transactions:       agg.Transactions,
	}
}

// History buckets normalized spend into monthly or quarterly periods.
func (e *Engine) History(ctx context.Context, raws []RawTransaction, goal Goal, view HistoryView, now time.Time, excludeCurrent bool) []Period {
	txs := e.normalizer.Normalize(ctx, raws)
	if view == HistoryQuarterly {
		return Quarterly(txs, goal.MonthlyBudget, goal.SavingsGoal, now)
	}
	return Monthly(txs, goal.MonthlyBudget, goal.SavingsGoal, now, excludeCurrent)
}
