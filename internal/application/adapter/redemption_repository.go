// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// RedemptionRepository records accepted gift card redemptions.
type RedemptionRepository interface {
	Create(ctx context.Context, redemption *entity.Redemption) error
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Redemption, error)
}
