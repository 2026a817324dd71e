// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/persistence/model"
)

// budgetGoalRepository implements the adapter.BudgetGoalRepository interface.
type budgetGoalRepository struct {
	db *gorm.DB
}

// NewBudgetGoalRepository creates a new budget goal repository instance.
func NewBudgetGoalRepository(db *gorm.DB) adapter.BudgetGoalRepository {
	return &budgetGoalRepository{
		db: db,
	}
}

// Save upserts the goal on its account.
func (r *budgetGoalRepository) Save(ctx context.Context, goal *entity.BudgetGoal) error {
	goalModel := model.BudgetGoalFromEntity(goal)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"monthly_budget", "savings_goal", "updated_at"}),
		}).
		Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByAccount retrieves the goal for an account.
func (r *budgetGoalRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*entity.BudgetGoal, error) {
	var goalModel model.BudgetGoalModel
	result := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}
