// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetGoal holds the user's monthly spending ceiling and savings target.
type BudgetGoal struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	MonthlyBudget decimal.Decimal
	SavingsGoal   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBudgetGoal creates a new BudgetGoal entity.
func NewBudgetGoal(accountID uuid.UUID, monthlyBudget, savingsGoal decimal.Decimal) *BudgetGoal {
	now := time.Now().UTC()

	return &BudgetGoal{
		ID:            uuid.New(),
		AccountID:     accountID,
		MonthlyBudget: monthlyBudget,
		SavingsGoal:   savingsGoal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Update replaces the budget and goal values.
func (g *BudgetGoal) Update(monthlyBudget, savingsGoal decimal.Decimal) {
	g.MonthlyBudget = monthlyBudget
	g.SavingsGoal = savingsGoal
	g.UpdatedAt = time.Now().UTC()
}
