// Package goal contains budget goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// SetGoalInput represents the input for setting the budget goal.
type SetGoalInput struct {
	SavingsGoal   decimal.Decimal
	MonthlyBudget decimal.Decimal
}

// SetGoalOutput represents the output of setting the budget goal.
type SetGoalOutput struct {
	Goal *entity.BudgetGoal
}

// SetGoalUseCase validates and stores the monthly budget and savings goal.
type SetGoalUseCase struct {
	accountRepo adapter.AccountRepository
	goalRepo    adapter.BudgetGoalRepository
}

// NewSetGoalUseCase creates a new SetGoalUseCase instance.
func NewSetGoalUseCase(accountRepo adapter.AccountRepository, goalRepo adapter.BudgetGoalRepository) *SetGoalUseCase {
	return &SetGoalUseCase{
		accountRepo: accountRepo,
		goalRepo:    goalRepo,
	}
}

// Execute validates the input and upserts the goal for the active account.
func (uc *SetGoalUseCase) Execute(ctx context.Context, input SetGoalInput) (*SetGoalOutput, error) {
	if err := ValidateGoal(input.SavingsGoal, input.MonthlyBudget); err != nil {
		return nil, err
	}

	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByAccount(ctx, acct.ID)
	switch {
	case err == nil:
		goal.Update(input.MonthlyBudget, input.SavingsGoal)
	case errors.Is(err, domainerror.ErrGoalNotFound):
		goal = entity.NewBudgetGoal(acct.ID, input.MonthlyBudget, input.SavingsGoal)
	default:
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalSaveFailed,
			"failed to save goal",
			err,
		)
	}

	slog.Info("Budget goal saved",
		"account_id", acct.ID,
		"monthly_budget", goal.MonthlyBudget.StringFixed(2),
		"savings_goal", goal.SavingsGoal.StringFixed(2),
	)

	return &SetGoalOutput{Goal: goal}, nil
}

// ValidateGoal checks the boundary rules: both values positive and the goal within the budget.
func ValidateGoal(savingsGoal, monthlyBudget decimal.Decimal) error {
	if !savingsGoal.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotPositive,
			domainerror.ErrGoalNotPositive.Error(),
			domainerror.ErrGoalNotPositive,
		)
	}
	if !monthlyBudget.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeBudgetNotPositive,
			domainerror.ErrBudgetNotPositive.Error(),
			domainerror.ErrBudgetNotPositive,
		)
	}
	if savingsGoal.GreaterThan(monthlyBudget) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalExceedsBudget,
			domainerror.ErrGoalExceedsBudget.Error(),
			domainerror.ErrGoalExceedsBudget,
		)
	}
	return nil
}
