package coach

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

func want(desc string, amount int64, position int) Transaction {
	return Transaction{Description: desc, Amount: decimal.NewFromInt(amount), Category: entity.CategoryWant, Position: position}
}

func goalOf(budget, savings int64) Goal {
	return Goal{MonthlyBudget: decimal.NewFromInt(budget), SavingsGoal: decimal.NewFromInt(savings)}
}

func totalsOf(txs []Transaction) Totals {
	needs, wants := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if tx.Category == entity.CategoryNeed {
			needs = needs.Add(tx.Amount)
		} else {
			wants = wants.Add(tx.Amount)
		}
	}
	return newTotals(needs, wants)
}

func TestSuggestionKind(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"Starbucks Coffee", "coffee"},
		{"Corner Cafe", "coffee"},
		{"Olive Garden Restaurant", "dining"},
		{"DoorDash Delivery", "dining"},
		{"Gap Clothing", "clothing"},
		{"Amazon Purchase", "shopping"},
		{"Uber Ride", "rideshare"},
		{"AMC Movie Theater", "movies"},
		{"Netflix Subscription", "streaming"},
		{"Barnes Bookstore", "books"},
		{"Shell Gas", "fuel"},
		{"Fuel Station", "fuel"},
		{"Fuel Rewards", "generic"},
		{"Sephora Makeup", "beauty"},
		{"Concert Tickets", "generic"},
		// first match wins: "coffee" is checked before "delivery"
		{"Coffee Delivery", "coffee"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := SuggestionKind(tt.description); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSuggestion_Templates(t *testing.T) {
	got := Suggestion(want("Starbucks Coffee", 45, 0))
	expected := "☕ Break up with that $45.00 coffee habit! Instead of buying coffee out, invest in a quality coffee maker or French press. You'll save hundreds while still getting your caffeine fix - and you can make it exactly how you like it!"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	generic := Suggestion(want("Concert Tickets", 120, 0))
	if !strings.HasPrefix(generic, "💪 Instead of spending $120.00 on Concert Tickets, ") {
		t.Errorf("expected generic template naming the description, got %q", generic)
	}
}

func TestTopWants(t *testing.T) {
	txs := []Transaction{
		want("Coffee", 10, 0),
		{Description: "Rent", Amount: decimal.NewFromInt(900), Category: entity.CategoryNeed, Position: 1},
		want("Movie", 30, 2),
		want("Shoes", 30, 3),
		want("Book", 5, 4),
	}

	top := TopWants(txs, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 wants, got %d", len(top))
	}
	if top[0].Description != "Movie" || top[1].Description != "Shoes" {
		t.Errorf("expected Movie then Shoes, got %s then %s", top[0].Description, top[1].Description)
	}
}

func TestRecommender_OverBudget(t *testing.T) {
	r := NewRecommender(rand.New(rand.NewPCG(1, 2)))

	t.Run("reports overage and top two wants", func(t *testing.T) {
		txs := []Transaction{
			want("Starbucks Coffee", 50, 0),
			want("Uber Ride", 100, 1),
			want("Concert", 0, 2),
		}
		got := r.Recommend(txs, totalsOf(txs), goalOf(100, 20))

		expected := "🚨 You're $50.00 over your monthly budget! Here's how to get back on track:\n\n" +
			"🚶‍♀️ Turn that $100.00 ride expense into free exercise! Walk, bike, or use public transit when possible. Your wallet AND your health will thank you!" +
			"\n\n" +
			"☕ Break up with that $50.00 coffee habit! Instead of buying coffee out, invest in a quality coffee maker or French press. You'll save hundreds while still getting your caffeine fix - and you can make it exactly how you like it!"
		if got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})

	t.Run("no wants falls back to review message", func(t *testing.T) {
		txs := []Transaction{
			{Description: "Rent", Amount: decimal.NewFromInt(1500), Category: entity.CategoryNeed},
		}
		got := r.Recommend(txs, totalsOf(txs), goalOf(1000, 100))
		expected := "🚨 You're $500.00 over your monthly budget! 💡 Review your recent purchases and identify areas where you can cut back next month. Every small change adds up to big savings!"
		if got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})
}

func TestRecommender_UnderBudget(t *testing.T) {
	txs := []Transaction{
		{Description: "Grocery Store", Amount: decimal.NewFromInt(50), Category: entity.CategoryNeed},
		want("Coffee Shop", 8, 1),
	}

	got := NewRecommender(rand.New(rand.NewPCG(7, 7))).Recommend(txs, totalsOf(txs), goalOf(100, 20))

	if !strings.HasPrefix(got, "🎉 Amazing—you’ve got $42.00 left this month!") {
		t.Errorf("expected under-budget message, got %q", got)
	}
	if !strings.HasSuffix(got, "or use student/local discounts when available.") {
		t.Errorf("expected pro tip at the end, got %q", got)
	}

	assertSampled(t, got, "🍽️ Restaurants: ", Restaurants)
	assertSampled(t, got, "🗺️ Attractions: ", Attractions)

	again := NewRecommender(rand.New(rand.NewPCG(7, 7))).Recommend(txs, totalsOf(txs), goalOf(100, 20))
	if got != again {
		t.Errorf("expected identical output for identical seeds")
	}
}

func assertSampled(t *testing.T, message, prefix string, pool []string) {
	t.Helper()

	var line string
	for _, l := range strings.Split(message, "\n") {
		if strings.HasPrefix(l, prefix) {
			line = strings.TrimSuffix(strings.TrimPrefix(l, prefix), ".")
		}
	}
	if line == "" {
		t.Fatalf("expected a line starting with %q in %q", prefix, message)
	}

	items := strings.Split(line, "; ")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %v", len(items), items)
	}
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item] {
			t.Errorf("expected distinct items, %q repeated", item)
		}
		seen[item] = true

		found := false
		for _, p := range pool {
			if p == item {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q to come from the pool", item)
		}
	}
}

func TestRecommender_NeverEmpty(t *testing.T) {
	r := NewRecommender(nil)
	tests := []struct {
		name   string
		spent  int64
		budget int64
	}{
		{"zero budget zero spend", 0, 0},
		{"zero budget with spend", 25, 0},
		{"exact budget", 100, 100},
		{"under budget", 10, 100},
		{"over budget", 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := []Transaction{want("Thing", tt.spent, 0)}
			if got := r.Recommend(txs, totalsOf(txs), goalOf(tt.budget, 0)); got == "" {
				t.Error("expected non-empty recommendation")
			}
		})
	}
}

func TestRecommender_ExactBudget(t *testing.T) {
	txs := []Transaction{want("Thing", 100, 0)}
	got := NewRecommender(nil).Recommend(txs, totalsOf(txs), goalOf(100, 10))
	if got != exactBudgetMessage {
		t.Errorf("expected %q, got %q", exactBudgetMessage, got)
	}
}
