package coach

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// NormalizerConfig fixes the window synthetic dates are spread across.
type NormalizerConfig struct {
	ReferenceYear int
	FirstMonth    time.Month
	WindowMonths  int
	DaysInMonth   int
	Hour          int
}

// DefaultNormalizerConfig spreads dates over July to October 2025, days 1-28, at noon UTC.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		ReferenceYear: 2025,
		FirstMonth:    time.July,
		WindowMonths:  4,
		DaysInMonth:   28,
		Hour:          12,
	}
}

// Normalizer resolves categories and gives every transaction a date.
type Normalizer struct {
	store  DateStore
	config NormalizerConfig
}

// NewNormalizer creates a Normalizer backed by the given date memo.
func NewNormalizer(store DateStore, config NormalizerConfig) *Normalizer {
	if store == nil {
		store = NewMemoryDateStore()
	}
	if config.WindowMonths <= 0 || config.DaysInMonth <= 0 {
		config = DefaultNormalizerConfig()
	}
	return &Normalizer{store: store, config: config}
}

// Normalize converts raw transactions in order. It never fails: store errors
// are logged and the computed date is used.
func (n *Normalizer) Normalize(ctx context.Context, raws []RawTransaction) []Transaction {
	out := make([]Transaction, 0, len(raws))
	for i, raw := range raws {
		out = append(out, n.normalizeOne(ctx, i, raw))
	}
	return out
}

func (n *Normalizer) normalizeOne(ctx context.Context, position int, raw RawTransaction) Transaction {
	amount := raw.Amount
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	tx := Transaction{
		ID:          raw.ID,
		Description: raw.Description,
		Amount:      amount,
		Category:    ResolveCategory(raw.Description, raw.Category),
		Position:    position,
	}

	if raw.Date != nil && !raw.Date.IsZero() {
		tx.Date = *raw.Date
		return tx
	}

	tx.Date = n.stableDate(ctx, raw)
	tx.Synthesized = true
	return tx
}

func (n *Normalizer) stableDate(ctx context.Context, raw RawTransaction) time.Time {
	seed := Seed(raw)

	date, ok, err := n.store.Lookup(ctx, seed)
	if err != nil {
		slog.Warn("Synthetic date lookup failed", "seed", seed, "error", err)
	}
	if ok {
		return date
	}

	date = n.SyntheticDate(seed)
	if err := n.store.Save(ctx, seed, date); err != nil {
		slog.Warn("Synthetic date could not be persisted", "seed", seed, "error", err)
	}
	return date
}

// SyntheticDate derives the date for a seed without touching the store.
func (n *Normalizer) SyntheticDate(seed string) time.Time {
	h := abs(int64(SeedHash(seed)))
	month := n.config.FirstMonth + time.Month(h%int64(n.config.WindowMonths))
	day := int(h%int64(n.config.DaysInMonth)) + 1
	return time.Date(n.config.ReferenceYear, month, day, n.config.Hour, 0, 0, 0, time.UTC)
}

// ResolveCategory applies the grocer override and collapses unknown values to Want.
func ResolveCategory(description string, category entity.Category) entity.Category {
	if strings.Contains(strings.ToLower(description), "grocer") {
		return entity.CategoryNeed
	}
	if !category.IsValid() {
		return entity.CategoryWant
	}
	return category
}

// Seed is the memo key for a transaction: its id (or description) followed by its amount.
func Seed(raw RawTransaction) string {
	key := raw.ID
	if key == "" {
		key = raw.Description
	}
	return key + raw.Amount.String()
}

// SeedHash is the 32-bit rolling hash h = h*31 + c over the UTF-16 code units of seed.
func SeedHash(seed string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(seed)) {
		h = h*31 + int32(unit)
	}
	return h
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
