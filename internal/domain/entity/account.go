// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account links the coach to a customer and checking account at the banking provider.
type Account struct {
	ID         uuid.UUID
	CustomerID string
	AccountID  string
	Nickname   string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(customerID, accountID, nickname, email string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:         uuid.New(),
		CustomerID: customerID,
		AccountID:  accountID,
		Nickname:   nickname,
		Email:      email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsMock reports whether the account ids were generated locally because the bank was unreachable.
func (a *Account) IsMock() bool {
	return strings.HasPrefix(a.AccountID, "mock_")
}
