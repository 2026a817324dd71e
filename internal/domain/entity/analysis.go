// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalysisRecord is the persisted trace of one analysis run.
type AnalysisRecord struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	NeedsTotal       decimal.Decimal
	WantsTotal       decimal.Decimal
	TotalSpending    decimal.Decimal
	MonthlyBudget    decimal.Decimal
	SavingsGoal      decimal.Decimal
	Recommendation   string
	CoachNote        string
	WantDescriptions []string
	AICategorized    bool
	CreatedAt        time.Time
}

// NewAnalysisRecord creates a new AnalysisRecord entity.
func NewAnalysisRecord(accountID uuid.UUID) *AnalysisRecord {
	return &AnalysisRecord{
		ID:        uuid.New(),
		AccountID: accountID,
		CreatedAt: time.Now().UTC(),
	}
}
