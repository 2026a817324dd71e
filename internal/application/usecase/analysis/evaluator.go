// Package analysis contains spending analysis use cases.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// Inputs is everything loaded from storage for one evaluation.
type Inputs struct {
	Account       *entity.Account
	Goal          coach.Goal
	HasGoal       bool
	Transactions  []coach.RawTransaction
	AICategorized bool
}

// Evaluation is a computed snapshot together with the inputs it came from.
type Evaluation struct {
	Inputs
	Snapshot coach.Snapshot
}

// Evaluator loads the active account's data, resolves missing categories and runs the engine.
// It is shared by every use case that needs the current snapshot.
type Evaluator struct {
	accountRepo     adapter.AccountRepository
	goalRepo        adapter.BudgetGoalRepository
	transactionRepo adapter.TransactionRepository
	aiService       adapter.AICoachService
	engine          *coach.Engine
}

// NewEvaluator creates a new Evaluator instance. aiService may be nil.
func NewEvaluator(
	accountRepo adapter.AccountRepository,
	goalRepo adapter.BudgetGoalRepository,
	transactionRepo adapter.TransactionRepository,
	aiService adapter.AICoachService,
	engine *coach.Engine,
) *Evaluator {
	return &Evaluator{
		accountRepo:     accountRepo,
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
		aiService:       aiService,
		engine:          engine,
	}
}

// Engine returns the engine used for evaluations.
func (e *Evaluator) Engine() *coach.Engine {
	return e.engine
}

// Load reads the account, goal and transactions. A missing goal yields a zero budget and goal.
func (e *Evaluator) Load(ctx context.Context) (*Inputs, error) {
	acct, err := account.ResolveActive(ctx, e.accountRepo)
	if err != nil {
		return nil, err
	}

	inputs := &Inputs{Account: acct}

	goal, err := e.goalRepo.FindByAccount(ctx, acct.ID)
	switch {
	case err == nil:
		inputs.Goal = coach.Goal{MonthlyBudget: goal.MonthlyBudget, SavingsGoal: goal.SavingsGoal}
		inputs.HasGoal = true
	case errors.Is(err, domainerror.ErrGoalNotFound):
	default:
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	stored, err := e.transactionRepo.FindByAccount(ctx, acct.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	inputs.AICategorized = e.resolveCategories(ctx, stored)
	inputs.Transactions = coach.FromEntities(stored)

	return inputs, nil
}

// Evaluate loads inputs and runs the engine over window.
func (e *Evaluator) Evaluate(ctx context.Context, window valueobject.SpendingWindow, now time.Time) (*Evaluation, error) {
	inputs, err := e.Load(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := e.engine.Analyze(ctx, coach.AnalysisInput{
		Transactions: inputs.Transactions,
		Goal:         inputs.Goal,
		Window:       window,
		Now:          now,
	})

	return &Evaluation{Inputs: *inputs, Snapshot: snapshot}, nil
}

// resolveCategories fills in categories for stored transactions that have none.
// The AI categorizer is tried first; keywords are the fallback. Stored categories are never overwritten.
// Returns true when the AI labelled at least one transaction.
func (e *Evaluator) resolveCategories(ctx context.Context, stored []*entity.Transaction) bool {
	var pending []*entity.Transaction
	for _, t := range stored {
		if !t.Category.IsValid() {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return false
	}

	categories, usedAI := e.categorize(ctx, pending)

	updates := make(map[uuid.UUID]entity.Category, len(pending))
	for i, t := range pending {
		t.Category = categories[i]
		updates[t.ID] = categories[i]
	}

	if err := e.transactionRepo.UpdateCategories(ctx, updates); err != nil {
		slog.Warn("Failed to persist resolved categories", "count", len(updates), "error", err)
	}

	return usedAI
}

func (e *Evaluator) categorize(ctx context.Context, pending []*entity.Transaction) ([]entity.Category, bool) {
	fallback := func() []entity.Category {
		out := make([]entity.Category, len(pending))
		for i, t := range pending {
			out[i] = entity.FallbackCategory(t.Description)
		}
		return out
	}

	if e.aiService == nil || !e.aiService.IsAvailable() {
		return fallback(), false
	}

	request := make([]adapter.TransactionForAI, len(pending))
	for i, t := range pending {
		request[i] = adapter.TransactionForAI{Description: t.Description, Amount: t.Amount.StringFixed(2)}
	}

	categories, err := e.aiService.Categorize(ctx, request)
	if err != nil {
		classified, retryable := classifyAIError(err)
		slog.Warn("AI categorization failed, using keyword fallback",
			"code", classified.Code,
			"retryable", retryable,
			"error", err,
		)
		return fallback(), false
	}
	if len(categories) != len(pending) {
		slog.Warn("AI categorization returned the wrong number of labels, using keyword fallback",
			"expected", len(pending),
			"got", len(categories),
		)
		return fallback(), false
	}

	for i, c := range categories {
		if !c.IsValid() {
			categories[i] = entity.FallbackCategory(pending[i].Description)
		}
	}
	return categories, true
}
