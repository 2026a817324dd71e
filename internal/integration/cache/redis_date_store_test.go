package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/financial-coach/backend/internal/domain/coach"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

func TestRedisDateStore(t *testing.T) {
	ctx := context.Background()
	client, server := newTestClient(t)
	store := NewRedisDateStore(client, "")

	if _, ok, err := store.Lookup(ctx, "Coffee Shop8"); ok || err != nil {
		t.Fatalf("expected miss, got %v %v", ok, err)
	}

	first := time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC)
	if err := store.Save(ctx, "Coffee Shop8", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(ctx, "Coffee Shop8", first.AddDate(0, 1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	date, ok, err := store.Lookup(ctx, "Coffee Shop8")
	if err != nil || !ok {
		t.Fatalf("expected hit, got %v %v", ok, err)
	}
	if !date.Equal(first) {
		t.Errorf("expected %s, got %s", first, date)
	}

	if got := server.HGet(DefaultDateNamespace, "Coffee Shop8"); got != "2025-09-03T12:00:00.000Z" {
		t.Errorf("expected ISO date with millis, got %q", got)
	}

	count, err := store.Len(ctx)
	if err != nil || count != 1 {
		t.Errorf("expected 1 seed, got %d %v", count, err)
	}
}

func TestRedisDateStore_CorruptValue(t *testing.T) {
	ctx := context.Background()
	client, server := newTestClient(t)
	store := NewRedisDateStore(client, "custom")

	server.HSet("custom", "bad", "not-a-date")

	if _, ok, err := store.Lookup(ctx, "bad"); ok || err == nil {
		t.Errorf("expected parse error, got %v %v", ok, err)
	}
}

func TestRedisDateStore_WithNormalizer(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	store := NewRedisDateStore(client, "")

	raws := []coach.RawTransaction{{ID: "tx-1", Description: "Zara Clothing"}}

	first := coach.NewNormalizer(store, coach.DefaultNormalizerConfig()).Normalize(ctx, raws)
	second := coach.NewNormalizer(store, coach.DefaultNormalizerConfig()).Normalize(ctx, raws)

	if !first[0].Date.Equal(second[0].Date) {
		t.Errorf("expected stable date across normalizers, got %s and %s", first[0].Date, second[0].Date)
	}
	if _, ok, _ := store.Lookup(ctx, coach.Seed(raws[0])); !ok {
		t.Error("expected the seed to be persisted")
	}
}
