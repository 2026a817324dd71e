// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	"github.com/financial-coach/backend/internal/integration/persistence/model"
)

// redemptionRepository implements the adapter.RedemptionRepository interface.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository creates a new redemption repository instance.
func NewRedemptionRepository(db *gorm.DB) adapter.RedemptionRepository {
	return &redemptionRepository{
		db: db,
	}
}

// Create records an accepted redemption.
func (r *redemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	result := r.db.WithContext(ctx).Create(model.RedemptionFromEntity(redemption))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByAccount returns the account's redemptions, newest first.
func (r *redemptionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Redemption, error) {
	var redemptionModels []model.RedemptionModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&redemptionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	redemptions := make([]*entity.Redemption, len(redemptionModels))
	for i := range redemptionModels {
		redemptions[i] = redemptionModels[i].ToEntity()
	}
	return redemptions, nil
}
