// Package account contains account lookup use cases.
package account

import (
	"context"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// GetAccountOutput represents the output of the active account lookup.
type GetAccountOutput struct {
	Account *entity.Account
}

// GetAccountUseCase returns the active account.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{accountRepo: accountRepo}
}

// Execute looks up the active account.
func (uc *GetAccountUseCase) Execute(ctx context.Context) (*GetAccountOutput, error) {
	account, err := ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}
	return &GetAccountOutput{Account: account}, nil
}
