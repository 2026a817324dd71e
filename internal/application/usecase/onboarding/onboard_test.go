package onboarding

import (
	"context"
	"errors"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/financial-coach/backend/internal/application/adapter/adaptertest"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

var mockIDPattern = regexp.MustCompile(`^mock_(customer|account)_\d{6}$`)

func TestSamplePurchases(t *testing.T) {
	if len(SamplePurchases) != 60 {
		t.Fatalf("expected 60 sample purchases, got %d", len(SamplePurchases))
	}
	if SamplePurchases[0].Description != "HEB Grocery Store" || SamplePurchases[0].Amount != 1200 {
		t.Errorf("unexpected first purchase %+v", SamplePurchases[0])
	}
}

func TestMerchantFor(t *testing.T) {
	tests := []struct {
		name      string
		merchants []string
		index     int
		expected  string
	}{
		{name: "first merchant", merchants: []string{"m1", "m2"}, index: 0, expected: "m1"},
		{name: "missing slot", merchants: []string{"m1", "m2"}, index: 4, expected: "merchant_5"},
		{name: "wraps around pool", merchants: []string{"m1", "m2"}, index: 11, expected: "m2"},
		{name: "no merchants", merchants: nil, index: 9, expected: "merchant_10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := merchantFor(tt.merchants, tt.index); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestOnboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("bank available", func(t *testing.T) {
		accounts := adaptertest.NewAccountRepository()
		transactions := adaptertest.NewTransactionRepository()
		bank := &adaptertest.BankingClient{Merchants: []string{"m1", "m2", "m3"}}

		out, err := NewOnboardUseCase(accounts, transactions, bank, rng).Execute(ctx, OnboardInput{Email: "demo@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Mock {
			t.Error("expected real ids")
		}
		if out.Account.CustomerID != "cust_1" || out.Account.AccountID != "acct_1" {
			t.Errorf("expected bank ids, got %s/%s", out.Account.CustomerID, out.Account.AccountID)
		}
		if bank.Customers[0].City != "Austin" || bank.Accounts[0].Nickname != "Main Checking" {
			t.Errorf("unexpected bank payloads %+v %+v", bank.Customers[0], bank.Accounts[0])
		}
		if out.SeededLocally != 60 || out.SeededAtBank != 60 {
			t.Errorf("expected 60/60 seeded, got %d/%d", out.SeededLocally, out.SeededAtBank)
		}
		if bank.Purchases[3].MerchantID != "merchant_4" || bank.Purchases[3].Medium != "balance" {
			t.Errorf("unexpected purchase %+v", bank.Purchases[3])
		}

		active, err := accounts.FindActive(ctx)
		if err != nil || active.ID != out.Account.ID {
			t.Errorf("expected onboarded account to be active, got %v", err)
		}
		stored, _ := transactions.FindByAccount(ctx, out.Account.ID)
		if len(stored) != 60 {
			t.Fatalf("expected 60 stored transactions, got %d", len(stored))
		}
		if stored[0].Category.IsValid() {
			t.Errorf("expected seeded purchases to be uncategorized, got %s", stored[0].Category)
		}
	})

	t.Run("bank unreachable uses mock ids", func(t *testing.T) {
		bank := &adaptertest.BankingClient{Err: domainerror.ErrBankUnavailable}
		out, err := NewOnboardUseCase(adaptertest.NewAccountRepository(), adaptertest.NewTransactionRepository(), bank, rng).
			Execute(ctx, OnboardInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Mock || !out.Account.IsMock() {
			t.Error("expected mock account")
		}
		if !mockIDPattern.MatchString(out.Account.CustomerID) || !mockIDPattern.MatchString(out.Account.AccountID) {
			t.Errorf("unexpected mock ids %s/%s", out.Account.CustomerID, out.Account.AccountID)
		}
		if out.SeededAtBank != 0 || len(bank.Purchases) != 0 {
			t.Error("expected no bank seeding for mock accounts")
		}
		if out.SeededLocally != 60 {
			t.Errorf("expected local seeding, got %d", out.SeededLocally)
		}
	})

	t.Run("bank seeding failure is not fatal", func(t *testing.T) {
		bank := &adaptertest.BankingClient{PurchaseErr: errors.New("status 500")}
		out, err := NewOnboardUseCase(adaptertest.NewAccountRepository(), adaptertest.NewTransactionRepository(), bank, rng).
			Execute(ctx, OnboardInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.BankSeedingError == nil || out.SeededAtBank != 0 {
			t.Errorf("expected bank seeding error, got %v (%d)", out.BankSeedingError, out.SeededAtBank)
		}
	})

	t.Run("local seeding failure is not fatal", func(t *testing.T) {
		transactions := adaptertest.NewTransactionRepository()
		transactions.Err = errors.New("db down")
		out, err := NewOnboardUseCase(adaptertest.NewAccountRepository(), transactions, nil, rng).Execute(ctx, OnboardInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SeededLocally != 0 {
			t.Errorf("expected nothing seeded, got %d", out.SeededLocally)
		}
	})

	t.Run("account storage failure", func(t *testing.T) {
		accounts := adaptertest.NewAccountRepository()
		accounts.Err = errors.New("db down")
		_, err := NewOnboardUseCase(accounts, adaptertest.NewTransactionRepository(), nil, rng).Execute(ctx, OnboardInput{})

		var accErr *domainerror.AccountError
		if !errors.As(err, &accErr) || accErr.Code != domainerror.ErrCodeOnboardingFailed {
			t.Errorf("expected onboarding failure, got %v", err)
		}
	})
}
