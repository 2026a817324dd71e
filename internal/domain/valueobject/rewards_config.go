// Package valueobject contains domain value objects for the Financial Coach system.
package valueobject

import "github.com/shopspring/decimal"

// RewardsConfig contains the exchange rates used to turn savings into points.
type RewardsConfig struct {
	PointsPerDollar decimal.Decimal // 1 = one point per dollar saved
	PointsPerReward int64           // 100 points buy one gift card
	RewardValue     decimal.Decimal // 50 = $50 gift card
}

// DefaultRewardsConfig returns the canonical rates.
func DefaultRewardsConfig() RewardsConfig {
	return RewardsConfig{
		PointsPerDollar: decimal.NewFromInt(1),
		PointsPerReward: 100,
		RewardValue:     decimal.NewFromInt(50),
	}
}

// NewRewardsConfig builds a config from plain numbers, falling back to the
// canonical rate for any non-positive value.
func NewRewardsConfig(pointsPerDollar float64, pointsPerReward int64, rewardValue float64) RewardsConfig {
	cfg := DefaultRewardsConfig()
	if pointsPerDollar > 0 {
		cfg.PointsPerDollar = decimal.NewFromFloat(pointsPerDollar)
	}
	if pointsPerReward > 0 {
		cfg.PointsPerReward = pointsPerReward
	}
	if rewardValue > 0 {
		cfg.RewardValue = decimal.NewFromFloat(rewardValue)
	}
	return cfg
}
