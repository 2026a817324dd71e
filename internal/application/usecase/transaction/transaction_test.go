package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter/adaptertest"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

func TestAddTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	acct := entity.NewAccount("c1", "a1", "Main Checking", "")

	tests := []struct {
		name             string
		input            AddTransactionInput
		expectedCode     domainerror.TransactionErrorCode
		expectedCategory entity.Category
	}{
		{
			name:         "blank description",
			input:        AddTransactionInput{Description: "   ", Amount: decimal.NewFromInt(5)},
			expectedCode: domainerror.ErrCodeEmptyDescription,
		},
		{
			name:             "multibyte description at the limit",
			input:            AddTransactionInput{Description: strings.Repeat("é", MaxDescriptionLength), Amount: decimal.NewFromInt(5)},
			expectedCategory: entity.CategoryWant,
		},
		{
			name:         "multibyte description over the limit",
			input:        AddTransactionInput{Description: strings.Repeat("é", MaxDescriptionLength+1), Amount: decimal.NewFromInt(5)},
			expectedCode: domainerror.ErrCodeDescriptionTooLong,
		},
		{
			name:         "negative amount",
			input:        AddTransactionInput{Description: "Coffee", Amount: decimal.NewFromInt(-5)},
			expectedCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:             "keyword need",
			input:            AddTransactionInput{Description: "Electric utility bill", Amount: decimal.NewFromInt(80)},
			expectedCategory: entity.CategoryNeed,
		},
		{
			name:             "everything else is a want",
			input:            AddTransactionInput{Description: "Concert tickets", Amount: decimal.NewFromInt(80)},
			expectedCategory: entity.CategoryWant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := adaptertest.NewTransactionRepository()
			uc := NewAddTransactionUseCase(adaptertest.NewAccountRepository(acct), repo)

			out, err := uc.Execute(ctx, tt.input)
			if tt.expectedCode != "" {
				var txErr *domainerror.TransactionError
				if !errors.As(err, &txErr) || txErr.Code != tt.expectedCode {
					t.Fatalf("expected code %s, got %v", tt.expectedCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Transaction.Category != tt.expectedCategory {
				t.Errorf("expected %s, got %s", tt.expectedCategory, out.Transaction.Category)
			}
			if out.Transaction.AccountID != acct.ID {
				t.Errorf("expected transaction on the active account")
			}
		})
	}
}

func TestRemoveTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	acct := entity.NewAccount("c1", "a1", "Main Checking", "")
	other := entity.NewAccount("c0", "a0", "Old", "")
	mine := entity.NewTransaction(acct.ID, "Coffee", decimal.NewFromInt(5), entity.CategoryWant, nil)
	theirs := entity.NewTransaction(other.ID, "Coffee", decimal.NewFromInt(5), entity.CategoryWant, nil)

	tests := []struct {
		name         string
		id           string
		expectedCode domainerror.TransactionErrorCode
		expectedMsg  string
	}{
		{name: "missing id", id: "", expectedCode: domainerror.ErrCodeMissingTransactionID, expectedMsg: "This transaction cannot be removed (missing id)."},
		{name: "malformed id", id: "abc", expectedCode: domainerror.ErrCodeInvalidTransactionID},
		{name: "unknown id", id: "7d6c2f8e-0f0b-4a43-9d2f-6a3c6f1b2e11", expectedCode: domainerror.ErrCodeTransactionNotFound},
		{name: "other account", id: theirs.ID.String(), expectedCode: domainerror.ErrCodeTransactionNotFound},
		{name: "removed", id: mine.ID.String()},
	}

	repo := adaptertest.NewTransactionRepository(mine, theirs)
	uc := NewRemoveTransactionUseCase(adaptertest.NewAccountRepository(other, acct), repo)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(ctx, RemoveTransactionInput{TransactionID: tt.id})
			if tt.expectedCode != "" {
				var txErr *domainerror.TransactionError
				if !errors.As(err, &txErr) || txErr.Code != tt.expectedCode {
					t.Fatalf("expected code %s, got %v", tt.expectedCode, err)
				}
				if tt.expectedMsg != "" && txErr.Message != tt.expectedMsg {
					t.Errorf("expected message %q, got %q", tt.expectedMsg, txErr.Message)
				}
				return
			}
			if err != nil || !out.Success {
				t.Fatalf("expected success, got %v", err)
			}
			if !mine.IsDeleted() {
				t.Error("expected transaction to be soft-deleted")
			}
		})
	}
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	acct := entity.NewAccount("c1", "a1", "Main Checking", "")
	older := time.Date(2025, time.September, 2, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2025, time.October, 2, 12, 0, 0, 0, time.UTC)

	repo := adaptertest.NewTransactionRepository(
		entity.NewTransaction(acct.ID, "Rent", decimal.NewFromInt(900), "", &older),
		entity.NewTransaction(acct.ID, "Movie", decimal.NewFromInt(15), entity.CategoryWant, &newer),
	)
	engine := coach.NewEngine(
		coach.NewNormalizer(coach.NewMemoryDateStore(), coach.DefaultNormalizerConfig()),
		coach.NewRecommender(nil),
		coach.NewProjector(valueobject.DefaultRewardsConfig()),
	)
	uc := NewListTransactionsUseCase(adaptertest.NewAccountRepository(acct), repo, engine)

	out, err := uc.Execute(ctx, ListTransactionsInput{Window: valueobject.AllTime(), Now: newer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Transactions) != 2 || out.Transactions[0].Description != "Movie" {
		t.Fatalf("expected Movie first, got %+v", out.Transactions)
	}
	if out.Transactions[1].Category != entity.CategoryNeed {
		t.Errorf("expected uncategorized rent to fall back to Need, got %s", out.Transactions[1].Category)
	}
	if !out.Totals.Total.Equal(decimal.NewFromInt(915)) {
		t.Errorf("expected total 915, got %s", out.Totals.Total)
	}
}
