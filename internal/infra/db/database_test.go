package db

import (
	"testing"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/config"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver: DriverSQLite,
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if !database.HealthCheck() {
		t.Error("expected healthy database")
	}
	if err := database.AutoMigrate(); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	for _, table := range []string{"accounts", "budget_goals", "transactions", "analyses", "saved_stocks", "redemptions", "synthetic_dates", "email_queue"} {
		if !database.DB().Migrator().HasTable(table) {
			t.Errorf("expected table %s to exist", table)
		}
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	if _, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
