package coach

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/valueobject"
)

func TestProjector_Project(t *testing.T) {
	p := NewProjector(valueobject.DefaultRewardsConfig())

	tests := []struct {
		name              string
		savings           string
		expectedPoints    int64
		expectedAvailable int64
		expectedRemaining int64
		expectedCanRedeem bool
		expectedToNext    int64
	}{
		{name: "canonical scenario", savings: "250", expectedPoints: 250, expectedAvailable: 2, expectedRemaining: 50, expectedCanRedeem: true, expectedToNext: 50},
		{name: "fraction floors", savings: "99.99", expectedPoints: 99, expectedAvailable: 0, expectedRemaining: 99, expectedCanRedeem: false, expectedToNext: 1},
		{name: "exact reward", savings: "100", expectedPoints: 100, expectedAvailable: 1, expectedRemaining: 0, expectedCanRedeem: true, expectedToNext: 100},
		{name: "negative clamps", savings: "-40", expectedPoints: 0, expectedAvailable: 0, expectedRemaining: 0, expectedCanRedeem: false, expectedToNext: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Project(decimal.RequireFromString(tt.savings))

			if got.TotalPoints != tt.expectedPoints {
				t.Errorf("expected points %d, got %d", tt.expectedPoints, got.TotalPoints)
			}
			if got.AvailableRewards != tt.expectedAvailable {
				t.Errorf("expected available %d, got %d", tt.expectedAvailable, got.AvailableRewards)
			}
			if got.RemainingPoints != tt.expectedRemaining {
				t.Errorf("expected remaining %d, got %d", tt.expectedRemaining, got.RemainingPoints)
			}
			if got.CanRedeem != tt.expectedCanRedeem {
				t.Errorf("expected canRedeem %v, got %v", tt.expectedCanRedeem, got.CanRedeem)
			}
			if got.PointsToNextReward != tt.expectedToNext {
				t.Errorf("expected points to next %d, got %d", tt.expectedToNext, got.PointsToNextReward)
			}
		})
	}
}

func TestProjector_ProjectCapsLargeSavings(t *testing.T) {
	p := NewProjector(valueobject.DefaultRewardsConfig())

	tests := []struct {
		name           string
		savings        string
		expectedPoints int64
	}{
		{name: "at the cap", savings: "1000000000000", expectedPoints: 1_000_000_000_000},
		{name: "just below the cap", savings: "999999999999.99", expectedPoints: 999_999_999_999},
		{name: "just above the cap", savings: "1000000000000.01", expectedPoints: 1_000_000_000_000},
		{name: "past int64", savings: "1e19", expectedPoints: 1_000_000_000_000},
		{name: "int64 boundary", savings: "9223372036854775808", expectedPoints: 1_000_000_000_000},
		{name: "huge", savings: "1e30", expectedPoints: 1_000_000_000_000},
		{name: "huge exponent", savings: "1e5000000", expectedPoints: 1_000_000_000_000},
		{name: "tiny exponent", savings: "1e-5000000", expectedPoints: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Project(decimal.RequireFromString(tt.savings))

			if got.TotalPoints != tt.expectedPoints {
				t.Errorf("expected points %d, got %d", tt.expectedPoints, got.TotalPoints)
			}
			if got.TotalPoints < 0 || got.AvailableRewards < 0 || got.RemainingPoints < 0 || got.PointsToNextReward <= 0 {
				t.Errorf("expected a non-negative projection, got %+v", got)
			}
			if got.AvailableRewards != tt.expectedPoints/100 {
				t.Errorf("expected %d rewards, got %d", tt.expectedPoints/100, got.AvailableRewards)
			}
		})
	}
}

func TestProjector_CeilingFollowsPointsRate(t *testing.T) {
	// 1e8 points per dollar: the int64 bound is tighter than MaxSavings
	p := NewProjector(valueobject.NewRewardsConfig(1e8, 100, 50))
	got := p.Project(decimal.RequireFromString("1e15"))

	if got.TotalPoints <= 0 {
		t.Fatalf("expected positive points, got %d", got.TotalPoints)
	}
	if !got.Savings.LessThan(MaxSavings) {
		t.Errorf("expected savings capped below %s, got %s", MaxSavings, got.Savings)
	}
}

func TestSavingsWithinLimit(t *testing.T) {
	tests := []struct {
		savings  string
		expected bool
	}{
		{savings: "250.75", expected: true},
		{savings: "-10", expected: true},
		{savings: "1000000000000", expected: true},
		{savings: "1000000000000.01", expected: false},
		{savings: "1e19", expected: false},
		{savings: "1e5000000", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.savings, func(t *testing.T) {
			if got := SavingsWithinLimit(decimal.RequireFromString(tt.savings)); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestProjector_ProgressAndDollars(t *testing.T) {
	p := NewProjector(valueobject.NewRewardsConfig(0.5, 100, 25))
	got := p.Project(decimal.NewFromInt(130))

	// 130 * 0.5 = 65 points
	if got.TotalPoints != 65 {
		t.Fatalf("expected 65 points, got %d", got.TotalPoints)
	}
	if got.DollarsToNextReward != 70 {
		t.Errorf("expected $70 to next reward, got %d", got.DollarsToNextReward)
	}
	if !got.ProgressToNextReward.Equal(decimal.NewFromInt(65)) {
		t.Errorf("expected 65%% progress, got %s", got.ProgressToNextReward)
	}
}

func TestProjector_ProjectFloat(t *testing.T) {
	p := NewProjector(valueobject.DefaultRewardsConfig())

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -12.5} {
		got := p.ProjectFloat(v)
		if got.TotalPoints != 0 || got.AvailableRewards != 0 || got.CanRedeem {
			t.Errorf("expected zero projection for %v, got %+v", v, got)
		}
	}

	if got := p.ProjectFloat(math.MaxFloat64); got.TotalPoints != 1_000_000_000_000 {
		t.Errorf("expected capped points, got %d", got.TotalPoints)
	}
	if got := p.ProjectFloat(250.75); got.TotalPoints != 250 {
		t.Errorf("expected 250 points, got %d", got.TotalPoints)
	}
}

func TestProjector_Redeem(t *testing.T) {
	p := NewProjector(valueobject.DefaultRewardsConfig())
	rich := p.Project(decimal.NewFromInt(250))
	poor := p.Project(decimal.NewFromInt(40))

	tests := []struct {
		name             string
		projection       Projection
		retailer         string
		expectedAccepted bool
		expectedMessage  string
	}{
		{name: "no rewards", projection: poor, retailer: "Amazon", expectedMessage: "No rewards available yet"},
		{name: "no retailer", projection: rich, retailer: "  ", expectedMessage: "Please select a retailer first"},
		{name: "accepted", projection: rich, retailer: "amazon", expectedAccepted: true, expectedMessage: "Your $50 Amazon gift card is on its way!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Redeem(tt.projection, tt.retailer)
			if got.Accepted != tt.expectedAccepted {
				t.Errorf("expected accepted %v, got %v", tt.expectedAccepted, got.Accepted)
			}
			if got.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, got.Message)
			}
		})
	}
}

func TestFindRetailer(t *testing.T) {
	r, ok := FindRetailer(" best buy ")
	if !ok || r.Name != "Best Buy" || r.Icon != "🎮" {
		t.Errorf("expected Best Buy, got %+v (found=%v)", r, ok)
	}
	if _, ok := FindRetailer("Costco"); ok {
		t.Error("expected Costco to be unknown")
	}
}
