package coach

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// Aggregation is the result of summing a window of transactions.
type Aggregation struct {
	Totals       Totals
	Transactions []Transaction // newest first
}

// Aggregate sums amounts by category over the transactions selected by window.
func Aggregate(txs []Transaction, window valueobject.SpendingWindow, now time.Time) Aggregation {
	selected := SelectWindow(txs, window, now)

	needs := decimal.Zero
	wants := decimal.Zero
	for _, tx := range selected {
		if tx.Category == entity.CategoryNeed {
			needs = needs.Add(tx.Amount)
		} else {
			wants = wants.Add(tx.Amount)
		}
	}

	return Aggregation{Totals: newTotals(needs, wants), Transactions: selected}
}

// SelectWindow returns the transactions inside window, ordered newest first.
// Transactions sharing a date keep their input order.
func SelectWindow(txs []Transaction, window valueobject.SpendingWindow, now time.Time) []Transaction {
	ordered := SortNewestFirst(txs)

	switch window.Kind {
	case valueobject.WindowCurrentMonth:
		year, month, _ := now.Date()
		loc := now.Location()
		selected := make([]Transaction, 0, len(ordered))
		for _, tx := range ordered {
			y, m, _ := tx.Date.In(loc).Date()
			if y == year && m == month {
				selected = append(selected, tx)
			}
		}
		return selected
	case valueobject.WindowLastN:
		if window.N <= 0 {
			return []Transaction{}
		}
		if window.N < len(ordered) {
			return ordered[:window.N]
		}
		return ordered
	default:
		return ordered
	}
}

// SortNewestFirst returns a copy of txs in reverse-chronological order.
func SortNewestFirst(txs []Transaction) []Transaction {
	ordered := make([]Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Position < ordered[j].Position
		}
		return ordered[i].Date.After(ordered[j].Date)
	})
	return ordered
}
