// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// RedemptionModel represents the redemptions table in the database.
type RedemptionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Retailer    string          `gorm:"type:varchar(100);not null"`
	RewardValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PointsSpent int64           `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RedemptionModel.
func (RedemptionModel) TableName() string {
	return "redemptions"
}

// ToEntity converts a RedemptionModel to a domain Redemption entity.
func (m *RedemptionModel) ToEntity() *entity.Redemption {
	return &entity.Redemption{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Retailer:    m.Retailer,
		RewardValue: m.RewardValue,
		PointsSpent: m.PointsSpent,
		CreatedAt:   m.CreatedAt,
	}
}

// RedemptionFromEntity creates a RedemptionModel from a domain Redemption entity.
func RedemptionFromEntity(redemption *entity.Redemption) *RedemptionModel {
	return &RedemptionModel{
		ID:          redemption.ID,
		AccountID:   redemption.AccountID,
		Retailer:    redemption.Retailer,
		RewardValue: redemption.RewardValue,
		PointsSpent: redemption.PointsSpent,
		CreatedAt:   redemption.CreatedAt,
	}
}
