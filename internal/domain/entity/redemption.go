// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Redemption records a gift card claimed with reward points.
type Redemption struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Retailer    string
	RewardValue decimal.Decimal
	PointsSpent int64
	CreatedAt   time.Time
}

// NewRedemption creates a new Redemption entity.
func NewRedemption(accountID uuid.UUID, retailer string, rewardValue decimal.Decimal, pointsSpent int64) *Redemption {
	return &Redemption{
		ID:          uuid.New(),
		AccountID:   accountID,
		Retailer:    retailer,
		RewardValue: rewardValue,
		PointsSpent: pointsSpent,
		CreatedAt:   time.Now().UTC(),
	}
}
