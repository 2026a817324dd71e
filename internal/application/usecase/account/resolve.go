// Package account contains account lookup use cases.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// ResolveActive returns the account every request operates on: the most recently onboarded one.
func ResolveActive(ctx context.Context, accountRepo adapter.AccountRepository) (*entity.Account, error) {
	account, err := accountRepo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoAccount) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeNoAccount,
				domainerror.ErrNoAccount.Error(),
				domainerror.ErrNoAccount,
			)
		}
		return nil, fmt.Errorf("failed to find active account: %w", err)
	}
	return account, nil
}
