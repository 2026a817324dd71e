// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// RemoveTransactionInput represents the input for transaction removal.
type RemoveTransactionInput struct {
	TransactionID string
}

// RemoveTransactionOutput represents the output of transaction removal.
type RemoveTransactionOutput struct {
	Success bool
}

// RemoveTransactionUseCase handles transaction removal logic.
type RemoveTransactionUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewRemoveTransactionUseCase creates a new RemoveTransactionUseCase instance.
func NewRemoveTransactionUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *RemoveTransactionUseCase {
	return &RemoveTransactionUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction removal (soft delete).
func (uc *RemoveTransactionUseCase) Execute(ctx context.Context, input RemoveTransactionInput) (*RemoveTransactionOutput, error) {
	rawID := strings.TrimSpace(input.TransactionID)
	if rawID == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionID,
			domainerror.ErrMissingTransactionID.Error(),
			domainerror.ErrMissingTransactionID,
		)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionID,
			"invalid transaction id",
			err,
		)
	}

	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	// Purchases of other accounts are invisible, not forbidden.
	if transaction.AccountID != acct.ID {
		return nil, notFound()
	}

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	return &RemoveTransactionOutput{Success: true}, nil
}

func notFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
