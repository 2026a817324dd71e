package rewards

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter/adaptertest"
	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

func newEvaluator(acct *entity.Account, budget, goal int64, txs ...*entity.Transaction) (*analysis.Evaluator, *adaptertest.AccountRepository) {
	accounts := adaptertest.NewAccountRepository(acct)
	goals := adaptertest.NewGoalRepository(entity.NewBudgetGoal(acct.ID, decimal.NewFromInt(budget), decimal.NewFromInt(goal)))
	engine := coach.NewEngine(
		coach.NewNormalizer(nil, coach.DefaultNormalizerConfig()),
		coach.NewRecommender(nil),
		coach.NewProjector(valueobject.DefaultRewardsConfig()),
	)
	return analysis.NewEvaluator(accounts, goals, adaptertest.NewTransactionRepository(txs...), nil, engine), accounts
}

func TestGetRewardsUseCase_Execute(t *testing.T) {
	acct := entity.NewAccount("c1", "a1", "Main Checking", "")
	evaluator, accounts := newEvaluator(acct, 300, 100,
		entity.NewTransaction(acct.ID, "Movie night", decimal.NewFromInt(50), entity.CategoryWant, nil),
	)
	redemptions := &adaptertest.RedemptionRepository{
		Redemptions: []*entity.Redemption{entity.NewRedemption(acct.ID, "Amazon", decimal.NewFromInt(50), 100)},
	}
	uc := NewGetRewardsUseCase(accounts, evaluator, redemptions)

	t.Run("from analysis savings", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetRewardsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// savings = 300 - 50 wants
		if out.Projection.TotalPoints != 250 || out.Projection.AvailableRewards != 2 || out.Projection.RemainingPoints != 50 {
			t.Errorf("expected 250/2/50, got %+v", out.Projection)
		}
		if len(out.Retailers) != 8 {
			t.Errorf("expected 8 retailers, got %d", len(out.Retailers))
		}
		if len(out.History) != 1 || out.History[0].Retailer != "Amazon" {
			t.Errorf("expected redemption history, got %+v", out.History)
		}
	})

	t.Run("explicit savings override", func(t *testing.T) {
		savings := decimal.NewFromInt(-10)
		out, err := uc.Execute(context.Background(), GetRewardsInput{Savings: &savings})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Projection.TotalPoints != 0 || out.Projection.CanRedeem {
			t.Errorf("expected empty projection, got %+v", out.Projection)
		}
	})

	t.Run("savings above the limit", func(t *testing.T) {
		for _, raw := range []string{"1e19", "1e5000000"} {
			savings := decimal.RequireFromString(raw)
			_, err := uc.Execute(context.Background(), GetRewardsInput{Savings: &savings})

			var rwdErr *domainerror.RewardError
			if !errors.As(err, &rwdErr) || rwdErr.Code != domainerror.ErrCodeInvalidSavings {
				t.Errorf("expected invalid savings for %s, got %v", raw, err)
			}
		}
	})
}

func TestRedeemRewardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	acct := entity.NewAccount("c1", "a1", "Main Checking", "")
	evaluator, accounts := newEvaluator(acct, 300, 100)

	tests := []struct {
		name             string
		retailer         string
		savings          int64
		expectedAccepted bool
		expectedMessage  string
	}{
		{name: "no points", retailer: "Amazon", savings: 20, expectedMessage: "No rewards available yet"},
		{name: "no retailer", retailer: "", savings: 200, expectedMessage: "Please select a retailer first"},
		{name: "accepted", retailer: "Target", savings: 200, expectedAccepted: true, expectedMessage: "Your $50 Target gift card is on its way!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &adaptertest.RedemptionRepository{}
			uc := NewRedeemRewardUseCase(accounts, evaluator, repo)
			savings := decimal.NewFromInt(tt.savings)

			out, err := uc.Execute(ctx, RedeemRewardInput{Retailer: tt.retailer, Savings: &savings})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Redemption.Accepted != tt.expectedAccepted {
				t.Errorf("expected accepted %v, got %v", tt.expectedAccepted, out.Redemption.Accepted)
			}
			if out.Redemption.Message != tt.expectedMessage {
				t.Errorf("expected %q, got %q", tt.expectedMessage, out.Redemption.Message)
			}

			expectedRecords := 0
			if tt.expectedAccepted {
				expectedRecords = 1
			}
			if len(repo.Redemptions) != expectedRecords {
				t.Errorf("expected %d stored redemptions, got %d", expectedRecords, len(repo.Redemptions))
			}
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		repo := &adaptertest.RedemptionRepository{Err: errors.New("db down")}
		savings := decimal.NewFromInt(200)
		_, err := NewRedeemRewardUseCase(accounts, evaluator, repo).Execute(ctx, RedeemRewardInput{Retailer: "Amazon", Savings: &savings})

		var rwdErr *domainerror.RewardError
		if !errors.As(err, &rwdErr) || rwdErr.Code != domainerror.ErrCodeRedemptionSaveFailed {
			t.Errorf("expected save failure, got %v", err)
		}
	})

	t.Run("savings above the limit", func(t *testing.T) {
		repo := &adaptertest.RedemptionRepository{}
		savings := decimal.RequireFromString("1e19")
		_, err := NewRedeemRewardUseCase(accounts, evaluator, repo).Execute(ctx, RedeemRewardInput{Retailer: "Amazon", Savings: &savings})

		var rwdErr *domainerror.RewardError
		if !errors.As(err, &rwdErr) || rwdErr.Code != domainerror.ErrCodeInvalidSavings {
			t.Errorf("expected invalid savings, got %v", err)
		}
		if len(repo.Redemptions) != 0 {
			t.Errorf("expected no stored redemption, got %d", len(repo.Redemptions))
		}
	})

	t.Run("no account", func(t *testing.T) {
		_, err := NewRedeemRewardUseCase(adaptertest.NewAccountRepository(), evaluator, &adaptertest.RedemptionRepository{}).
			Execute(ctx, RedeemRewardInput{Retailer: "Amazon"})
		if !errors.Is(err, domainerror.ErrNoAccount) {
			t.Errorf("expected no account, got %v", err)
		}
	})
}
