// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/persistence/model"
)

// analysisRepository implements the adapter.AnalysisRepository interface.
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository instance.
func NewAnalysisRepository(db *gorm.DB) adapter.AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

// Create stores an analysis record.
func (r *analysisRepository) Create(ctx context.Context, record *entity.AnalysisRecord) error {
	result := r.db.WithContext(ctx).Create(model.AnalysisFromEntity(record))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindLatest returns the newest analysis for an account.
func (r *analysisRepository) FindLatest(ctx context.Context, accountID uuid.UUID) (*entity.AnalysisRecord, error) {
	var analysisModel model.AnalysisModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		First(&analysisModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAnalysisNotFound
		}
		return nil, result.Error
	}
	return analysisModel.ToEntity(), nil
}

// ListByAccount returns up to limit analyses, newest first. A non-positive limit returns all.
func (r *analysisRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error) {
	query := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var analysisModels []model.AnalysisModel
	if err := query.Find(&analysisModels).Error; err != nil {
		return nil, err
	}

	records := make([]*entity.AnalysisRecord, len(analysisModels))
	for i := range analysisModels {
		records[i] = analysisModels[i].ToEntity()
	}
	return records, nil
}
