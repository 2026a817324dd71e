// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// AnalysisRepository stores the analyses handed out to the user.
type AnalysisRepository interface {
	Create(ctx context.Context, record *entity.AnalysisRecord) error
	FindLatest(ctx context.Context, accountID uuid.UUID) (*entity.AnalysisRecord, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error)
}
