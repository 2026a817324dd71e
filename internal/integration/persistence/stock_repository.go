// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	"github.com/financial-coach/backend/internal/integration/persistence/model"
)

// savedStockRepository implements the adapter.SavedStockRepository interface.
type savedStockRepository struct {
	db *gorm.DB
}

// NewSavedStockRepository creates a new saved stock repository instance.
func NewSavedStockRepository(db *gorm.DB) adapter.SavedStockRepository {
	return &savedStockRepository{
		db: db,
	}
}

// Upsert stores stocks, updating the name of symbols already saved for the account.
func (r *savedStockRepository) Upsert(ctx context.Context, stocks []*entity.SavedStock) error {
	if len(stocks) == 0 {
		return nil
	}

	models := make([]*model.SavedStockModel, len(stocks))
	for i, s := range stocks {
		models[i] = model.SavedStockFromEntity(s)
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "symbol"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&models)
	return result.Error
}

// FindByAccount returns saved stocks ordered by symbol.
func (r *savedStockRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.SavedStock, error) {
	var stockModels []model.SavedStockModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("symbol ASC").
		Find(&stockModels)
	if result.Error != nil {
		return nil, result.Error
	}

	stocks := make([]*entity.SavedStock, len(stockModels))
	for i := range stockModels {
		stocks[i] = stockModels[i].ToEntity()
	}
	return stocks, nil
}
