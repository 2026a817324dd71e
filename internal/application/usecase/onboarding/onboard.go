// Package onboarding contains the account onboarding use case.
package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

const (
	mockCustomerIDFormat = "mock_customer_%06d"
	mockAccountIDFormat  = "mock_account_%06d"

	// merchantPoolSize is how many bank merchants purchases are spread across.
	merchantPoolSize = 10

	purchaseMedium = "balance"
)

var demoCustomer = adapter.BankCustomer{
	FirstName:    "Demo",
	LastName:     "User",
	StreetNumber: "123",
	StreetName:   "Demo Street",
	City:         "Austin",
	State:        "TX",
	Zip:          "78701",
}

var checkingAccount = adapter.BankAccount{
	Type:     "Checking",
	Nickname: "Main Checking",
	Rewards:  0,
	Balance:  decimal.NewFromInt(1000),
}

// OnboardInput represents the input for onboarding.
type OnboardInput struct {
	Email string // Optional digest recipient
}

// OnboardOutput represents the output of onboarding.
type OnboardOutput struct {
	Account          *entity.Account
	Mock             bool // The bank was unreachable and ids were generated locally
	SeededLocally    int
	SeededAtBank     int
	BankSeedingError error
}

// OnboardUseCase creates the account every other operation works on.
type OnboardUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	bank            adapter.BankingClient

	mu  sync.Mutex
	rng *rand.Rand
}

// NewOnboardUseCase creates a new OnboardUseCase instance. bank may be nil, in which case
// mock ids are always used. rng may be nil.
func NewOnboardUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	bank adapter.BankingClient,
	rng *rand.Rand,
) *OnboardUseCase {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &OnboardUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		bank:            bank,
		rng:             rng,
	}
}

// Execute creates the customer and account, stores them and seeds the sample purchases.
// Only a failure to store the account is fatal.
func (uc *OnboardUseCase) Execute(ctx context.Context, input OnboardInput) (*OnboardOutput, error) {
	customerID, accountID, mock := uc.openAccount(ctx)

	acct := entity.NewAccount(customerID, accountID, checkingAccount.Nickname, input.Email)
	if err := uc.accountRepo.Create(ctx, acct); err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeOnboardingFailed,
			domainerror.ErrOnboardingFailed.Error(),
			err,
		)
	}

	output := &OnboardOutput{Account: acct, Mock: mock}

	transactions := make([]*entity.Transaction, 0, len(SamplePurchases))
	for _, p := range SamplePurchases {
		transactions = append(transactions, entity.NewTransaction(acct.ID, p.Description, decimal.NewFromInt(p.Amount), "", nil))
	}
	if err := uc.transactionRepo.BulkCreate(ctx, transactions); err != nil {
		slog.Warn("Failed to seed sample purchases",
			"code", domainerror.ErrCodeSeedingFailed,
			"account_id", acct.ID,
			"error", err,
		)
	} else {
		output.SeededLocally = len(transactions)
	}

	if !mock {
		output.SeededAtBank, output.BankSeedingError = uc.seedBank(ctx, accountID)
		if output.BankSeedingError != nil {
			slog.Warn("Bank seeding stopped early",
				"code", domainerror.ErrCodeSeedingFailed,
				"account_id", accountID,
				"seeded", output.SeededAtBank,
				"error", output.BankSeedingError,
			)
		}
	}

	slog.Info("Account onboarded",
		"account_id", acct.ID,
		"bank_account_id", accountID,
		"mock", mock,
		"seeded", output.SeededLocally,
	)

	return output, nil
}

func (uc *OnboardUseCase) openAccount(ctx context.Context) (customerID, accountID string, mock bool) {
	if uc.bank == nil {
		return uc.mockID(mockCustomerIDFormat), uc.mockID(mockAccountIDFormat), true
	}

	customerID, err := uc.bank.CreateCustomer(ctx, demoCustomer)
	if err == nil {
		accountID, err = uc.bank.CreateAccount(ctx, customerID, checkingAccount)
	}
	if err != nil {
		slog.Warn("Banking provider unavailable, using mock ids",
			"code", domainerror.ErrCodeBankUnavailable,
			"error", err,
		)
		return uc.mockID(mockCustomerIDFormat), uc.mockID(mockAccountIDFormat), true
	}

	return customerID, accountID, false
}

// mockID returns format filled with a random six-digit number.
func (uc *OnboardUseCase) mockID(format string) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return fmt.Sprintf(format, 100000+uc.rng.IntN(900000))
}

// seedBank posts the sample purchases to the bank, stopping at the first failure.
func (uc *OnboardUseCase) seedBank(ctx context.Context, accountID string) (int, error) {
	merchants, err := uc.bank.ListMerchantIDs(ctx)
	if err != nil {
		slog.Warn("Could not list merchants, using placeholders", "error", err)
		merchants = nil
	}
	if len(merchants) > merchantPoolSize {
		merchants = merchants[:merchantPoolSize]
	}

	for i, p := range SamplePurchases {
		err := uc.bank.CreatePurchase(ctx, accountID, adapter.BankPurchase{
			MerchantID:  merchantFor(merchants, i),
			Medium:      purchaseMedium,
			Amount:      decimal.NewFromInt(p.Amount),
			Description: p.Description,
		})
		if err != nil {
			return i, fmt.Errorf("failed to post purchase %q: %w", p.Description, err)
		}
	}
	return len(SamplePurchases), nil
}

// merchantFor cycles through the merchant pool, using placeholders when a slot is missing.
func merchantFor(merchants []string, index int) string {
	slot := index % merchantPoolSize
	if slot < len(merchants) {
		return merchants[slot]
	}
	return fmt.Sprintf("merchant_%d", slot+1)
}
