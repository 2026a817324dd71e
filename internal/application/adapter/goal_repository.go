// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// BudgetGoalRepository defines the interface for budget goal persistence operations.
type BudgetGoalRepository interface {
	// Save creates or updates the goal for its account.
	Save(ctx context.Context, goal *entity.BudgetGoal) error

	// FindByAccount retrieves the goal for an account.
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*entity.BudgetGoal, error)
}
