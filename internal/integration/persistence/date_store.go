// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/integration/persistence/model"
)

// DateStore is a coach.DateStore backed by the synthetic_dates table.
type DateStore struct {
	db        *gorm.DB
	namespace string
}

// NewDateStore creates a DateStore whose rows are scoped to namespace.
func NewDateStore(db *gorm.DB, namespace string) *DateStore {
	return &DateStore{db: db, namespace: namespace}
}

var _ coach.DateStore = (*DateStore)(nil)

// Lookup returns the stored date for seed.
func (s *DateStore) Lookup(ctx context.Context, seed string) (time.Time, bool, error) {
	var row model.SyntheticDateModel
	result := s.db.WithContext(ctx).
		Where("namespace = ? AND seed = ?", s.namespace, seed).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, result.Error
	}

	date, err := coach.ParseISODate(row.Date)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse stored date for %q: %w", seed, err)
	}
	return date, true, nil
}

// Save stores the date for seed. The first date written for a seed wins.
func (s *DateStore) Save(ctx context.Context, seed string, date time.Time) error {
	row := &model.SyntheticDateModel{
		Namespace: s.namespace,
		Seed:      seed,
		Date:      coach.FormatISODate(date),
		CreatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}
