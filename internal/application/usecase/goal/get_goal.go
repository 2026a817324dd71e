// Package goal contains budget goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// GetGoalOutput represents the output of retrieving the goal.
type GetGoalOutput struct {
	Goal *entity.BudgetGoal
}

// GetGoalUseCase handles retrieving the goal of the active account.
type GetGoalUseCase struct {
	accountRepo adapter.AccountRepository
	goalRepo    adapter.BudgetGoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(accountRepo adapter.AccountRepository, goalRepo adapter.BudgetGoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		accountRepo: accountRepo,
		goalRepo:    goalRepo,
	}
}

// Execute retrieves the goal.
func (uc *GetGoalUseCase) Execute(ctx context.Context) (*GetGoalOutput, error) {
	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByAccount(ctx, acct.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	return &GetGoalOutput{Goal: goal}, nil
}
