// Package cache provides redis-backed stores.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/financial-coach/backend/internal/domain/coach"
)

// DefaultDateNamespace is the hash key synthetic dates are kept under.
const DefaultDateNamespace = "txDateMap2025"

// RedisDateStore is a coach.DateStore kept in a single redis hash, one field per seed.
type RedisDateStore struct {
	client    redis.Cmdable
	namespace string
}

// NewRedisDateStore creates a store writing to the hash named namespace.
func NewRedisDateStore(client redis.Cmdable, namespace string) *RedisDateStore {
	if namespace == "" {
		namespace = DefaultDateNamespace
	}
	return &RedisDateStore{client: client, namespace: namespace}
}

var _ coach.DateStore = (*RedisDateStore)(nil)

// Lookup implements coach.DateStore.
func (s *RedisDateStore) Lookup(ctx context.Context, seed string) (time.Time, bool, error) {
	value, err := s.client.HGet(ctx, s.namespace, seed).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to read synthetic date: %w", err)
	}

	date, err := coach.ParseISODate(value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse stored date for %q: %w", seed, err)
	}
	return date, true, nil
}

// Save implements coach.DateStore. An existing date for seed is kept.
func (s *RedisDateStore) Save(ctx context.Context, seed string, date time.Time) error {
	if err := s.client.HSetNX(ctx, s.namespace, seed, coach.FormatISODate(date)).Err(); err != nil {
		return fmt.Errorf("failed to store synthetic date: %w", err)
	}
	return nil
}

// Len returns the number of seeds in the hash.
func (s *RedisDateStore) Len(ctx context.Context) (int64, error) {
	return s.client.HLen(ctx, s.namespace).Result()
}
