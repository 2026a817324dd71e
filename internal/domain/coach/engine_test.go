package coach

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

func newTestEngine() *Engine {
	return NewEngine(
		NewNormalizer(NewMemoryDateStore(), DefaultNormalizerConfig()),
		NewRecommender(rand.New(rand.NewPCG(42, 42))),
		NewProjector(valueobject.DefaultRewardsConfig()),
	)
}

func TestEngine_Analyze_UnderBudgetScenario(t *testing.T) {
	snapshot := newTestEngine().Analyze(context.Background(), AnalysisInput{
		Transactions: []RawTransaction{
			{Description: "Grocery Store", Amount: decimal.NewFromInt(50), Category: entity.CategoryWant},
			{Description: "Coffee Shop", Amount: decimal.NewFromInt(8), Category: entity.CategoryWant},
		},
		Goal:   goalOf(100, 20),
		Window: valueobject.AllTime(),
		Now:    time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC),
	})

	checks := []struct {
		name     string
		got      decimal.Decimal
		expected int64
	}{
		{"needs", snapshot.Needs, 50},
		{"wants", snapshot.Wants, 8},
		{"total", snapshot.Total, 58},
		{"remaining", snapshot.Remaining, 42},
		{"savings", snapshot.SavingsAmount, 92},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromInt(c.expected)) {
			t.Errorf("expected %s %d, got %s", c.name, c.expected, c.got)
		}
	}

	if !strings.HasPrefix(snapshot.Recommendation, "🎉 Amazing—you’ve got $42.00 left this month!") {
		t.Errorf("expected under-budget recommendation, got %q", snapshot.Recommendation)
	}
	if snapshot.Rewards.TotalPoints != 92 {
		t.Errorf("expected 92 points, got %d", snapshot.Rewards.TotalPoints)
	}
	if len(snapshot.Transactions) != 2 {
		t.Errorf("expected 2 transactions, got %d", len(snapshot.Transactions))
	}
}

func TestEngine_Analyze_OverBudgetScenario(t *testing.T) {
	snapshot := newTestEngine().Analyze(context.Background(), AnalysisInput{
		Transactions: []RawTransaction{
			{ID: "1", Description: "Gap Jeans", Amount: decimal.NewFromInt(150), Category: entity.CategoryWant},
		},
		Goal:   goalOf(100, 20),
		Window: valueobject.AllTime(),
	})

	if !snapshot.Wants.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected wants 150, got %s", snapshot.Wants)
	}
	if !strings.HasPrefix(snapshot.Recommendation, "🚨 You're $50.00 over your monthly budget! ") {
		t.Errorf("expected over-budget banner, got %q", snapshot.Recommendation)
	}
	if !strings.Contains(snapshot.Recommendation, "👗 Instead of spending $150.00 on new clothes") {
		t.Errorf("expected clothing tip, got %q", snapshot.Recommendation)
	}
	if snapshot.Rewards.TotalPoints != 0 || snapshot.Rewards.CanRedeem {
		t.Errorf("expected no rewards, got %+v", snapshot.Rewards)
	}
}

func TestEngine_Analyze_Invariants(t *testing.T) {
	e := newTestEngine()
	inputs := [][]RawTransaction{
		nil,
		{{Description: "Neighborhood GROCER", Amount: decimal.NewFromInt(20), Category: entity.CategoryWant}},
		{
			{Description: "Rent", Amount: decimal.NewFromInt(800), Category: entity.CategoryNeed},
			{Description: "Refund", Amount: decimal.NewFromInt(-30), Category: "bogus"},
			{Description: "Spotify", Amount: decimal.RequireFromString("10.99"), Category: entity.CategoryWant},
		},
	}

	for i, txs := range inputs {
		snapshot := e.Analyze(context.Background(), AnalysisInput{Transactions: txs, Goal: goalOf(0, 0), Window: valueobject.AllTime()})

		if !snapshot.Needs.Add(snapshot.Wants).Equal(snapshot.Total) {
			t.Errorf("case %d: expected needs + wants == total", i)
		}
		if snapshot.Rewards.TotalPoints < 0 || snapshot.Rewards.AvailableRewards < 0 {
			t.Errorf("case %d: expected non-negative rewards, got %+v", i, snapshot.Rewards)
		}
		if snapshot.Recommendation == "" {
			t.Errorf("case %d: expected a recommendation", i)
		}
		for _, tx := range snapshot.Transactions {
			if !tx.Category.IsValid() {
				t.Errorf("case %d: expected Need or Want, got %s", i, tx.Category)
			}
			if strings.Contains(strings.ToLower(tx.Description), "grocer") && tx.Category != entity.CategoryNeed {
				t.Errorf("case %d: expected grocer to be Need", i)
			}
		}
	}
}

func TestEngine_History(t *testing.T) {
	now := time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC)
	periods := newTestEngine().History(context.Background(), nil, goalOf(100, 20), HistoryQuarterly, now, false)
	if len(periods) != 4 {
		t.Fatalf("expected 4 quarters, got %d", len(periods))
	}
	for _, p := range periods {
		if !p.NoActivity || !p.Savings.IsZero() {
			t.Errorf("expected empty quarter %s to report no activity and zero savings", p.Label)
		}
	}
}
