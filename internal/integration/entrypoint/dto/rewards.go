package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/usecase/rewards"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// RedeemRewardRequest represents the request body for redeeming a gift card.
type RedeemRewardRequest struct {
	Retailer string           `json:"retailer" binding:"required"`
	Savings  *decimal.Decimal `json:"savings,omitempty"`
}

// ProjectionResponse represents the points earned from a savings amount.
type ProjectionResponse struct {
	Savings              string `json:"savings"`
	TotalPoints          int64  `json:"total_points"`
	AvailableRewards     int64  `json:"available_rewards"`
	RemainingPoints      int64  `json:"remaining_points"`
	CanRedeem            bool   `json:"can_redeem"`
	PointsToNextReward   int64  `json:"points_to_next_reward"`
	DollarsToNextReward  int64  `json:"dollars_to_next_reward"`
	ProgressToNextReward string `json:"progress_to_next_reward"`
	RewardValue          string `json:"reward_value"`
}

// RetailerResponse represents a gift card option.
type RetailerResponse struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// RedemptionResponse represents a past redemption.
type RedemptionResponse struct {
	ID          string    `json:"id"`
	Retailer    string    `json:"retailer"`
	RewardValue string    `json:"reward_value"`
	PointsSpent int64     `json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

// RewardsResponse represents the rewards page.
type RewardsResponse struct {
	ProjectionResponse
	PointsPerDollar string               `json:"points_per_dollar"`
	PointsPerReward int64                `json:"points_per_reward"`
	Retailers       []RetailerResponse   `json:"retailers"`
	History         []RedemptionResponse `json:"history"`
}

// RedeemRewardResponse represents an accepted redemption.
type RedeemRewardResponse struct {
	Accepted     bool               `json:"accepted"`
	RedemptionID string             `json:"redemption_id,omitempty"`
	Retailer     string             `json:"retailer"`
	Value        string             `json:"value"`
	Points       int64              `json:"points"`
	Message      string             `json:"message"`
	Rewards      ProjectionResponse `json:"rewards"`
}

// ToProjectionResponse converts a rewards projection to a response DTO.
func ToProjectionResponse(p coach.Projection) ProjectionResponse {
	return ProjectionResponse{
		Savings:              Money(p.Savings),
		TotalPoints:          p.TotalPoints,
		AvailableRewards:     p.AvailableRewards,
		RemainingPoints:      p.RemainingPoints,
		CanRedeem:            p.CanRedeem,
		PointsToNextReward:   p.PointsToNextReward,
		DollarsToNextReward:  p.DollarsToNextReward,
		ProgressToNextReward: Money(p.ProgressToNextReward),
		RewardValue:          Money(p.RewardValue),
	}
}

// ToRedemptionResponse converts a domain Redemption entity to a response DTO.
func ToRedemptionResponse(r *entity.Redemption) RedemptionResponse {
	return RedemptionResponse{
		ID:          r.ID.String(),
		Retailer:    r.Retailer,
		RewardValue: Money(r.RewardValue),
		PointsSpent: r.PointsSpent,
		CreatedAt:   r.CreatedAt,
	}
}

// ToRewardsResponse converts the rewards output to a response DTO.
func ToRewardsResponse(output *rewards.GetRewardsOutput) RewardsResponse {
	retailers := make([]RetailerResponse, 0, len(output.Retailers))
	for _, r := range output.Retailers {
		retailers = append(retailers, RetailerResponse{Name: r.Name, Icon: r.Icon})
	}
	history := make([]RedemptionResponse, 0, len(output.History))
	for _, r := range output.History {
		history = append(history, ToRedemptionResponse(r))
	}
	return RewardsResponse{
		ProjectionResponse: ToProjectionResponse(output.Projection),
		PointsPerDollar:    output.Config.PointsPerDollar.String(),
		PointsPerReward:    output.Config.PointsPerReward,
		Retailers:          retailers,
		History:            history,
	}
}

// ToRedeemRewardResponse converts the redemption output to a response DTO.
func ToRedeemRewardResponse(output *rewards.RedeemRewardOutput) RedeemRewardResponse {
	return RedeemRewardResponse{
		Accepted:     output.Redemption.Accepted,
		RedemptionID: output.RecordID,
		Retailer:     output.Redemption.Retailer,
		Value:        Money(output.Redemption.Value),
		Points:       output.Redemption.Points,
		Message:      output.Redemption.Message,
		Rewards:      ToProjectionResponse(output.Projection),
	}
}
