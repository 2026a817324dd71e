package rewards

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// RedeemRewardInput represents the input for redeeming a reward.
type RedeemRewardInput struct {
	Retailer string
	Savings  *decimal.Decimal
	Now      time.Time
}

// RedeemRewardOutput represents the output of a redemption attempt.
// A rejected attempt is not an error: Accepted is false and Message says why.
type RedeemRewardOutput struct {
	Redemption coach.Redemption
	Projection coach.Projection
	RecordID   string
}

// RedeemRewardUseCase exchanges points for a gift card.
type RedeemRewardUseCase struct {
	accountRepo    adapter.AccountRepository
	evaluator      *analysis.Evaluator
	redemptionRepo adapter.RedemptionRepository
}

// NewRedeemRewardUseCase creates a new RedeemRewardUseCase instance.
func NewRedeemRewardUseCase(
	accountRepo adapter.AccountRepository,
	evaluator *analysis.Evaluator,
	redemptionRepo adapter.RedemptionRepository,
) *RedeemRewardUseCase {
	return &RedeemRewardUseCase{
		accountRepo:    accountRepo,
		evaluator:      evaluator,
		redemptionRepo: redemptionRepo,
	}
}

// Execute performs the redemption.
func (uc *RedeemRewardUseCase) Execute(ctx context.Context, input RedeemRewardInput) (*RedeemRewardOutput, error) {
	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	projection, err := project(ctx, uc.evaluator, input.Savings, input.Now)
	if err != nil {
		return nil, err
	}

	redemption := uc.evaluator.Engine().Projector().Redeem(projection, input.Retailer)
	output := &RedeemRewardOutput{Redemption: redemption, Projection: projection}
	if !redemption.Accepted {
		return output, nil
	}

	record := entity.NewRedemption(acct.ID, redemption.Retailer, redemption.Value, redemption.Points)
	if err := uc.redemptionRepo.Create(ctx, record); err != nil {
		return nil, domainerror.NewRewardError(
			domainerror.ErrCodeRedemptionSaveFailed,
			"failed to record redemption",
			err,
		)
	}
	output.RecordID = record.ID.String()

	slog.Info("Reward redeemed",
		"account_id", acct.ID,
		"retailer", redemption.Retailer,
		"value", redemption.Value.String(),
	)

	return output, nil
}
