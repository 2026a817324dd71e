// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// BudgetGoalModel represents the budget_goals table in the database.
// There is at most one row per account.
type BudgetGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	MonthlyBudget decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavingsGoal   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetGoalModel.
func (BudgetGoalModel) TableName() string {
	return "budget_goals"
}

// ToEntity converts a BudgetGoalModel to a domain BudgetGoal entity.
func (m *BudgetGoalModel) ToEntity() *entity.BudgetGoal {
	return &entity.BudgetGoal{
		ID:            m.ID,
		AccountID:     m.AccountID,
		MonthlyBudget: m.MonthlyBudget,
		SavingsGoal:   m.SavingsGoal,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// BudgetGoalFromEntity creates a BudgetGoalModel from a domain BudgetGoal entity.
func BudgetGoalFromEntity(goal *entity.BudgetGoal) *BudgetGoalModel {
	return &BudgetGoalModel{
		ID:            goal.ID,
		AccountID:     goal.AccountID,
		MonthlyBudget: goal.MonthlyBudget,
		SavingsGoal:   goal.SavingsGoal,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
