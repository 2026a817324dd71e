// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// AnalysisModel represents the analyses table in the database.
type AnalysisModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	NeedsTotal       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	WantsTotal       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalSpending    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyBudget    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavingsGoal      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Recommendation   string          `gorm:"type:text"`
	CoachNote        string          `gorm:"type:text"`
	WantDescriptions TextArray       `gorm:"column:want_descriptions"`
	AICategorized    bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the AnalysisModel.
func (AnalysisModel) TableName() string {
	return "analyses"
}

// ToEntity converts an AnalysisModel to a domain AnalysisRecord entity.
func (m *AnalysisModel) ToEntity() *entity.AnalysisRecord {
	return &entity.AnalysisRecord{
		ID:               m.ID,
		AccountID:        m.AccountID,
		NeedsTotal:       m.NeedsTotal,
		WantsTotal:       m.WantsTotal,
		TotalSpending:    m.TotalSpending,
		MonthlyBudget:    m.MonthlyBudget,
		SavingsGoal:      m.SavingsGoal,
		Recommendation:   m.Recommendation,
		CoachNote:        m.CoachNote,
		WantDescriptions: m.WantDescriptions.Strings(),
		AICategorized:    m.AICategorized,
		CreatedAt:        m.CreatedAt,
	}
}

// AnalysisFromEntity creates an AnalysisModel from a domain AnalysisRecord entity.
func AnalysisFromEntity(record *entity.AnalysisRecord) *AnalysisModel {
	return &AnalysisModel{
		ID:               record.ID,
		AccountID:        record.AccountID,
		NeedsTotal:       record.NeedsTotal,
		WantsTotal:       record.WantsTotal,
		TotalSpending:    record.TotalSpending,
		MonthlyBudget:    record.MonthlyBudget,
		SavingsGoal:      record.SavingsGoal,
		Recommendation:   record.Recommendation,
		CoachNote:        record.CoachNote,
		WantDescriptions: NewTextArray(record.WantDescriptions),
		AICategorized:    record.AICategorized,
		CreatedAt:        record.CreatedAt,
	}
}
