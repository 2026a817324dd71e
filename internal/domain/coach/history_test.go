package coach

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

func TestMonthly(t *testing.T) {
	now := time.Date(2025, time.October, 18, 10, 0, 0, 0, time.UTC)
	txs := []Transaction{
		txAt("Rent", 900, entity.CategoryNeed, day(time.September, 1), 0),
		txAt("Coffee", 50, entity.CategoryWant, day(time.September, 20), 1),
		txAt("Trip", 1500, entity.CategoryWant, day(time.August, 5), 2),
		txAt("Movie", 15, entity.CategoryWant, day(time.October, 10), 3),
	}
	budget := decimal.NewFromInt(1000)
	goal := decimal.NewFromInt(200)

	t.Run("excluding current month", func(t *testing.T) {
		periods := Monthly(txs, budget, goal, now, true)
		expected := []struct {
			label   string
			spent   string
			savings string
			pct     string
		}{
			{"Sep 2025", "950", "50", "25"},
			{"Aug 2025", "1500", "-500", "0"},
			{"Jul 2025", "0", "1000", "100"},
		}

		if len(periods) != len(expected) {
			t.Fatalf("expected %d periods, got %d", len(expected), len(periods))
		}
		for i, e := range expected {
			p := periods[i]
			if p.Label != e.label {
				t.Errorf("expected label %s, got %s", e.label, p.Label)
			}
			if !p.Spent.Equal(decimal.RequireFromString(e.spent)) {
				t.Errorf("%s: expected spent %s, got %s", e.label, e.spent, p.Spent)
			}
			if !p.Savings.Equal(decimal.RequireFromString(e.savings)) {
				t.Errorf("%s: expected savings %s, got %s", e.label, e.savings, p.Savings)
			}
			if !p.PctToGoal.Equal(decimal.RequireFromString(e.pct)) {
				t.Errorf("%s: expected pct %s, got %s", e.label, e.pct, p.PctToGoal)
			}
		}
	})

	t.Run("including current month", func(t *testing.T) {
		periods := Monthly(txs, budget, goal, now, false)
		if periods[0].Label != "Oct 2025" || periods[0].Key != "2025-10" {
			t.Errorf("expected Oct 2025 first, got %s (%s)", periods[0].Label, periods[0].Key)
		}
		if !periods[0].Spent.Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected 15 spent, got %s", periods[0].Spent)
		}
	})

	t.Run("negative budget and goal clamp to zero", func(t *testing.T) {
		periods := Monthly(txs, decimal.NewFromInt(-5), decimal.NewFromInt(-5), now, true)
		for _, p := range periods {
			if p.Budget.IsNegative() || p.Goal.IsNegative() {
				t.Errorf("expected non-negative budget and goal, got %s and %s", p.Budget, p.Goal)
			}
			if !p.PctToGoal.IsZero() {
				t.Errorf("expected zero pct with zero goal, got %s", p.PctToGoal)
			}
		}
	})
}

func TestQuarterly(t *testing.T) {
	now := time.Date(2025, time.October, 18, 10, 0, 0, 0, time.UTC)
	txs := []Transaction{
		txAt("Rent", 900, entity.CategoryNeed, day(time.September, 1), 0),
		txAt("Trip", 1500, entity.CategoryWant, day(time.August, 5), 1),
		txAt("Movie", 15, entity.CategoryWant, day(time.October, 10), 2),
		txAt("Gift", 300, entity.CategoryWant, time.Date(2025, time.May, 2, 12, 0, 0, 0, time.UTC), 3),
	}
	budget := decimal.NewFromInt(1000)
	goal := decimal.NewFromInt(200)

	periods := Quarterly(txs, budget, goal, now)
	expected := []struct {
		key        string
		label      string
		spent      string
		savings    string
		pct        string
		noActivity bool
	}{
		{"2025-Q-6", "Jul–Sep 2025", "2400", "600", "100", false},
		{"2025-Q-3", "Apr–Jun 2025", "300", "2700", "100", false},
		{"2025-Q-0", "Jan–Mar 2025", "0", "0", "0", true},
		{"2024-Q-9", "Oct–Dec 2024", "0", "0", "0", true},
	}

	if len(periods) != len(expected) {
		t.Fatalf("expected %d periods, got %d", len(expected), len(periods))
	}
	for i, e := range expected {
		p := periods[i]
		if p.Key != e.key || p.Label != e.label {
			t.Errorf("expected %s %s, got %s %s", e.key, e.label, p.Key, p.Label)
		}
		if !p.Spent.Equal(decimal.RequireFromString(e.spent)) {
			t.Errorf("%s: expected spent %s, got %s", e.label, e.spent, p.Spent)
		}
		if !p.Savings.Equal(decimal.RequireFromString(e.savings)) {
			t.Errorf("%s: expected savings %s, got %s", e.label, e.savings, p.Savings)
		}
		if !p.PctToGoal.Equal(decimal.RequireFromString(e.pct)) {
			t.Errorf("%s: expected pct %s, got %s", e.label, e.pct, p.PctToGoal)
		}
		if p.NoActivity != e.noActivity {
			t.Errorf("%s: expected noActivity %v, got %v", e.label, e.noActivity, p.NoActivity)
		}
		if !p.Budget.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("%s: expected quarterly budget 3000, got %s", e.label, p.Budget)
		}
	}
}

func TestQuarterly_FirstQuarterWrapsYear(t *testing.T) {
	now := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	periods := Quarterly(nil, decimal.NewFromInt(100), decimal.NewFromInt(10), now)
	if periods[0].Label != "Oct–Dec 2025" {
		t.Errorf("expected Oct–Dec 2025 first, got %s", periods[0].Label)
	}
	if periods[3].Label != "Jan–Mar 2025" {
		t.Errorf("expected Jan–Mar 2025 last, got %s", periods[3].Label)
	}
}
