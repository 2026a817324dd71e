// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// SavedStockRepository defines the interface for the stock watchlist.
type SavedStockRepository interface {
	// Upsert stores stocks, updating the name of symbols already saved.
	Upsert(ctx context.Context, stocks []*entity.SavedStock) error

	// FindByAccount returns saved stocks ordered by symbol.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.SavedStock, error)
}
