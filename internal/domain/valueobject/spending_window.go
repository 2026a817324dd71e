// Package valueobject contains domain value objects for the Financial Coach system.
package valueobject

import (
	"fmt"
	"strconv"
	"strings"
)

// WindowKind selects which transactions an aggregation covers.
type WindowKind string

const (
	WindowAll          WindowKind = "all"
	WindowCurrentMonth WindowKind = "current_month"
	WindowLastN        WindowKind = "last_n"
)

// SpendingWindow is the selection predicate applied before totals are summed.
type SpendingWindow struct {
	Kind WindowKind
	N    int
}

// AllTime returns the window covering every transaction.
func AllTime() SpendingWindow {
	return SpendingWindow{Kind: WindowAll}
}

// CurrentMonth returns the window covering the calendar month of "now".
func CurrentMonth() SpendingWindow {
	return SpendingWindow{Kind: WindowCurrentMonth}
}

// LastN returns the window covering the n most recent transactions.
func LastN(n int) SpendingWindow {
	return SpendingWindow{Kind: WindowLastN, N: n}
}

// ParseSpendingWindow parses the query-string form of a window. An empty kind means all-time.
func ParseSpendingWindow(kind, n string) (SpendingWindow, error) {
	switch WindowKind(strings.ToLower(strings.TrimSpace(kind))) {
	case "", WindowAll:
		return AllTime(), nil
	case WindowCurrentMonth, "month":
		return CurrentMonth(), nil
	case WindowLastN, "last":
		count, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || count <= 0 {
			return SpendingWindow{}, fmt.Errorf("last_n window needs a positive n, got %q", n)
		}
		return LastN(count), nil
	default:
		return SpendingWindow{}, fmt.Errorf("unknown window %q", kind)
	}
}

// String returns the query-string form of the window.
func (w SpendingWindow) String() string {
	if w.Kind == WindowLastN {
		return fmt.Sprintf("%s:%d", w.Kind, w.N)
	}
	if w.Kind == "" {
		return string(WindowAll)
	}
	return string(w.Kind)
}
