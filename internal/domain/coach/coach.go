// Package coach implements the financial summary and recommendation engine:
// it turns a list of purchases plus a budget and savings goal into totals,
// savings figures, advice text, reward points and savings history.
//
// Everything here is synchronous and recomputed on demand. The only state is
// the synthetic-date memo, which is injected as a DateStore.
package coach

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// RawTransaction is a purchase as it arrives from storage or the bank, before normalization.
type RawTransaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    entity.Category
	Date        *time.Time
}

// Transaction is a normalized purchase: it always has a date and one of the two categories.
type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    entity.Category
	Date        time.Time
	Synthesized bool // Date was derived from the seed rather than supplied
	Position    int  // Index in the input, used as the stable tie-breaker
}

// Goal is the budget/savings pair the engine measures spending against.
type Goal struct {
	MonthlyBudget decimal.Decimal
	SavingsGoal   decimal.Decimal
}

// Totals are the category sums over a window. Total is always Needs + Wants.
type Totals struct {
	Needs decimal.Decimal
	Wants decimal.Decimal
	Total decimal.Decimal
}

func newTotals(needs, wants decimal.Decimal) Totals {
	return Totals{Needs: needs, Wants: wants, Total: needs.Add(wants)}
}

// FromEntity converts a stored transaction into engine input.
func FromEntity(t *entity.Transaction) RawTransaction {
	raw := RawTransaction{
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
		Date:        t.Date,
	}
	if t.ID != uuid.Nil {
		raw.ID = t.ID.String()
	}
	return raw
}

// FromEntities converts a slice of stored transactions, preserving order.
func FromEntities(txs []*entity.Transaction) []RawTransaction {
	raws := make([]RawTransaction, 0, len(txs))
	for _, t := range txs {
		raws = append(raws, FromEntity(t))
	}
	return raws
}
