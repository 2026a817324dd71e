// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create stores a newly onboarded account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindActive returns the most recently onboarded account.
	FindActive(ctx context.Context) (*entity.Account, error)

	// List returns all accounts, newest first.
	List(ctx context.Context) ([]*entity.Account, error)
}
