package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/financial-coach/backend/config"
)

func TestNewRedisConnection(t *testing.T) {
	server := miniredis.RunT(t)

	conn, err := NewRedisConnection(&config.RedisConfig{URL: "redis://" + server.Addr() + "/0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conn.HealthCheck() {
		t.Error("expected healthy redis")
	}

	server.Close()
	if conn.HealthCheck() {
		t.Error("expected unhealthy redis after shutdown")
	}
	_ = conn.Close()
}

func TestNewRedisConnection_InvalidURL(t *testing.T) {
	if _, err := NewRedisConnection(&config.RedisConfig{URL: "not a url"}); err == nil {
		t.Error("expected error for invalid url")
	}
}
