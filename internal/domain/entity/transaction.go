// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the spending bucket a transaction belongs to.
type Category string

const (
	CategoryNeed Category = "Need"
	CategoryWant Category = "Want"
)

// IsValid reports whether the category is one of the two known buckets.
func (c Category) IsValid() bool {
	return c == CategoryNeed || c == CategoryWant
}

// needKeywords are the description fragments that mark a purchase as essential
// when no AI categorization is available.
var needKeywords = []string{"grocery", "food", "gas", "rent", "utility", "insurance", "medical"}

// FallbackCategory classifies a description with the keyword list used when
// the AI categorizer is unavailable.
func FallbackCategory(description string) Category {
	lower := strings.ToLower(description)
	for _, keyword := range needKeywords {
		if strings.Contains(lower, keyword) {
			return CategoryNeed
		}
	}
	return CategoryWant
}

// Transaction represents a purchase recorded against an account.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	ExternalID  string // Purchase id at the banking provider, if any
	Description string
	Amount      decimal.Decimal
	Category    Category
	Date        *time.Time // Nil when the source did not provide one
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(accountID uuid.UUID, description string, amount decimal.Decimal, category Category, date *time.Time) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsDeleted returns true if the transaction has been soft-deleted.
func (t *Transaction) IsDeleted() bool {
	return t.DeletedAt != nil
}
