// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StockVerdict is the coarse rating shown next to a saved stock.
type StockVerdict string

const (
	StockVerdictBuy  StockVerdict = "buy"
	StockVerdictSell StockVerdict = "sell"
	StockVerdictHold StockVerdict = "hold"
)

// SavedStock is a stock symbol the user bookmarked from the trending list.
type SavedStock struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Symbol    string
	Name      string
	Tags      []string
	CreatedAt time.Time
}

// NewSavedStock creates a new SavedStock with a normalized symbol.
func NewSavedStock(accountID uuid.UUID, symbol, name string) *SavedStock {
	symbol = NormalizeSymbol(symbol)
	name = strings.TrimSpace(name)
	if name == "" {
		name = symbol
	}

	return &SavedStock{
		ID:        uuid.New(),
		AccountID: accountID,
		Symbol:    symbol,
		Name:      name,
		Tags:      []string{},
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeSymbol upper-cases and trims a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
