// Package rewards contains reward points use cases.
package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// GetRewardsInput represents the input for the rewards projection.
type GetRewardsInput struct {
	Savings *decimal.Decimal // Optional override; otherwise the analysis savings amount is used
	Now     time.Time
}

// GetRewardsOutput represents the output of the rewards projection.
type GetRewardsOutput struct {
	Projection coach.Projection
	Config     valueobject.RewardsConfig
	Retailers  []coach.Retailer
	History    []*entity.Redemption // newest first
}

// GetRewardsUseCase projects reward points from savings.
type GetRewardsUseCase struct {
	accountRepo    adapter.AccountRepository
	evaluator      *analysis.Evaluator
	redemptionRepo adapter.RedemptionRepository
}

// NewGetRewardsUseCase creates a new GetRewardsUseCase instance.
func NewGetRewardsUseCase(
	accountRepo adapter.AccountRepository,
	evaluator *analysis.Evaluator,
	redemptionRepo adapter.RedemptionRepository,
) *GetRewardsUseCase {
	return &GetRewardsUseCase{
		accountRepo:    accountRepo,
		evaluator:      evaluator,
		redemptionRepo: redemptionRepo,
	}
}

// Execute computes the projection.
func (uc *GetRewardsUseCase) Execute(ctx context.Context, input GetRewardsInput) (*GetRewardsOutput, error) {
	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	projection, err := project(ctx, uc.evaluator, input.Savings, input.Now)
	if err != nil {
		return nil, err
	}

	history, err := uc.redemptionRepo.FindByAccount(ctx, acct.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list redemptions: %w", err)
	}
	if history == nil {
		history = []*entity.Redemption{}
	}

	return &GetRewardsOutput{
		Projection: projection,
		Config:     uc.evaluator.Engine().Projector().Config(),
		Retailers:  coach.Retailers,
		History:    history,
	}, nil
}

func project(ctx context.Context, evaluator *analysis.Evaluator, savings *decimal.Decimal, now time.Time) (coach.Projection, error) {
	projector := evaluator.Engine().Projector()
	if savings != nil {
		if !coach.SavingsWithinLimit(*savings) {
			return coach.Projection{}, domainerror.NewRewardError(
				domainerror.ErrCodeInvalidSavings,
				fmt.Sprintf("savings cannot exceed %s", coach.MaxSavings.StringFixed(0)),
				domainerror.ErrInvalidSavings,
			)
		}
		return projector.Project(*savings), nil
	}

	evaluation, err := evaluator.Evaluate(ctx, valueobject.AllTime(), now)
	if err != nil {
		return coach.Projection{}, err
	}
	return evaluation.Snapshot.Rewards, nil
}
