// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Window valueobject.SpendingWindow
	Now    time.Time
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []coach.Transaction // newest first
	Totals       coach.Totals
}

// ListTransactionsUseCase lists normalized transactions inside a window.
type ListTransactionsUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	engine          *coach.Engine
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	engine *coach.Engine,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		engine:          engine,
	}
}

// Execute loads, normalizes and windows the active account's transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	stored, err := uc.transactionRepo.FindByAccount(ctx, acct.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	raws := coach.FromEntities(stored)
	for i := range raws {
		if !raws[i].Category.IsValid() {
			raws[i].Category = entity.FallbackCategory(raws[i].Description)
		}
	}

	normalized := uc.engine.Normalize(ctx, raws)
	agg := coach.Aggregate(normalized, input.Window, now)

	return &ListTransactionsOutput{
		Transactions: agg.Transactions,
		Totals:       agg.Totals,
	}, nil
}
