package coach

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// Retailer is a gift-card partner.
type Retailer struct {
	Name string
	Icon string
}

// Retailers lists the gift cards a reward can be redeemed for.
var Retailers = []Retailer{
	{Name: "Amazon", Icon: "🛒"},
	{Name: "Target", Icon: "🎯"},
	{Name: "Walmart", Icon: "🏪"},
	{Name: "Starbucks", Icon: "☕"},
	{Name: "Chipotle", Icon: "🌯"},
	{Name: "McDonald's", Icon: "🍔"},
	{Name: "DoorDash", Icon: "🚗"},
	{Name: "Best Buy", Icon: "🎮"},
}

// FindRetailer looks a retailer up by name, ignoring case and surrounding space.
func FindRetailer(name string) (Retailer, bool) {
	name = strings.TrimSpace(name)
	for _, r := range Retailers {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Retailer{}, false
}

// Projection is the points balance derived from a savings amount.
type Projection struct {
	Savings              decimal.Decimal
	TotalPoints          int64
	AvailableRewards     int64
	RemainingPoints      int64
	CanRedeem            bool
	PointsToNextReward   int64
	DollarsToNextReward  int64
	ProgressToNextReward decimal.Decimal // percent, 0-100
	RewardValue          decimal.Decimal
}

// Redemption is the outcome of a redeem attempt. A rejected attempt changes nothing.
type Redemption struct {
	Accepted bool
	Retailer string
	Value    decimal.Decimal
	Points   int64
	Message  string
}

const (
	msgNoRewards        = "No rewards available yet"
	msgSelectRetailer   = "Please select a retailer first"
	msgGiftCardOnTheWay = "Your $%s %s gift card is on its way!"
)

// MaxSavings is the largest savings amount converted into points. Anything
// above it is projected as MaxSavings.
var MaxSavings = decimal.New(1, 12)

// digits below the point that can still earn a point
const savingsScale = 8

// SavingsWithinLimit reports whether savings can be projected without capping.
func SavingsWithinLimit(savings decimal.Decimal) bool {
	return !exceeds(savings, MaxSavings)
}

// Projector converts savings into reward points.
type Projector struct {
	config  valueobject.RewardsConfig
	ceiling decimal.Decimal
}

// NewProjector creates a Projector with the given exchange rates.
func NewProjector(config valueobject.RewardsConfig) *Projector {
	if !config.PointsPerDollar.IsPositive() || config.PointsPerReward <= 0 || !config.RewardValue.IsPositive() {
		config = valueobject.DefaultRewardsConfig()
	}

	// total points must fit in an int64
	ceiling := decimal.NewFromInt(math.MaxInt64).Div(config.PointsPerDollar).Floor()
	if ceiling.GreaterThan(MaxSavings) {
		ceiling = MaxSavings
	}
	return &Projector{config: config, ceiling: ceiling}
}

// Config returns the exchange rates in use.
func (p *Projector) Config() valueobject.RewardsConfig {
	return p.config
}

// Project computes the points balance for savings. Negative savings count as
// zero and savings above the ceiling count as the ceiling.
func (p *Projector) Project(savings decimal.Decimal) Projection {
	savings = p.clamp(savings)

	perReward := p.config.PointsPerReward
	total := savings.Mul(p.config.PointsPerDollar).Floor().IntPart()
	available := total / perReward
	remaining := total % perReward
	toNext := perReward - remaining

	return Projection{
		Savings:              savings,
		TotalPoints:          total,
		AvailableRewards:     available,
		RemainingPoints:      remaining,
		CanRedeem:            available > 0,
		PointsToNextReward:   toNext,
		DollarsToNextReward:  decimal.NewFromInt(toNext).Div(p.config.PointsPerDollar).Ceil().IntPart(),
		ProgressToNextReward: decimal.NewFromInt(remaining).Div(decimal.NewFromInt(perReward)).Mul(hundred).Round(2),
		RewardValue:          p.config.RewardValue,
	}
}

// clamp bounds savings to [0, ceiling]. The magnitude is read from the digit
// count and exponent first so huge exponents are never rescaled.
func (p *Projector) clamp(savings decimal.Decimal) decimal.Decimal {
	if !savings.IsPositive() {
		return decimal.Zero
	}
	if exceeds(savings, p.ceiling) {
		return p.ceiling
	}
	if integerDigits(savings) < -savingsScale {
		return decimal.Zero
	}
	return savings
}

func exceeds(savings, ceiling decimal.Decimal) bool {
	if !savings.IsPositive() {
		return false
	}
	if !ceiling.IsPositive() {
		return true
	}
	digits, limit := integerDigits(savings), integerDigits(ceiling)
	if digits != limit {
		return digits > limit
	}
	return savings.GreaterThan(ceiling)
}

// integerDigits is the count of digits before the decimal point, negative for
// values below 0.1.
func integerDigits(d decimal.Decimal) int {
	return d.NumDigits() + int(d.Exponent())
}

// ProjectFloat is Project for untrusted float input: NaN and infinities count as zero.
func (p *Projector) ProjectFloat(savings float64) Projection {
	if math.IsNaN(savings) || math.IsInf(savings, 0) || savings < 0 {
		return p.Project(decimal.Zero)
	}
	return p.Project(decimal.NewFromFloat(savings))
}

// Redeem checks whether one reward can be exchanged at retailer.
func (p *Projector) Redeem(projection Projection, retailer string) Redemption {
	if !projection.CanRedeem {
		return Redemption{Message: msgNoRewards}
	}
	retailer = strings.TrimSpace(retailer)
	if retailer == "" {
		return Redemption{Message: msgSelectRetailer}
	}
	if known, ok := FindRetailer(retailer); ok {
		retailer = known.Name
	}

	return Redemption{
		Accepted: true,
		Retailer: retailer,
		Value:    p.config.RewardValue,
		Points:   p.config.PointsPerReward,
		Message:  fmt.Sprintf(msgGiftCardOnTheWay, p.config.RewardValue.String(), retailer),
	}
}
