// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// BankCustomer is the identity a customer is created with.
type BankCustomer struct {
	FirstName    string
	LastName     string
	StreetNumber string
	StreetName   string
	City         string
	State        string
	Zip          string
}

// BankAccount describes the account opened for a customer.
type BankAccount struct {
	Type     string
	Nickname string
	Rewards  int
	Balance  decimal.Decimal
}

// BankPurchase is a purchase posted against an account.
type BankPurchase struct {
	MerchantID  string
	Medium      string
	Amount      decimal.Decimal
	Description string
}

// BankingClient defines the interface for the banking sandbox.
type BankingClient interface {
	// CreateCustomer creates a customer and returns its bank-side ID.
	CreateCustomer(ctx context.Context, customer BankCustomer) (string, error)

	// CreateAccount opens an account for a customer and returns its bank-side ID.
	CreateAccount(ctx context.Context, customerID string, account BankAccount) (string, error)

	// ListMerchantIDs returns the merchants purchases can be posted against.
	ListMerchantIDs(ctx context.Context) ([]string, error)

	// CreatePurchase posts a purchase to an account.
	CreatePurchase(ctx context.Context, accountID string, purchase BankPurchase) error
}
