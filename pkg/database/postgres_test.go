package database

import (
	"context"
	"os"
	"testing"
	"time"
)

// getTestConfig returns config for testing, from env vars or defaults.
func getTestConfig() *PostgresConfig {
	cfg := DefaultPostgresConfig()

	if host := os.Getenv("TEST_POSTGRES_HOST"); host != "" {
		cfg.Host = host
	}
	if user := os.Getenv("TEST_POSTGRES_USER"); user != "" {
		cfg.User = user
	}
	if password := os.Getenv("TEST_POSTGRES_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if dbname := os.Getenv("TEST_POSTGRES_DATABASE"); dbname != "" {
		cfg.Database = dbname
	}

	return cfg
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	if cfg.Host != "localhost" {
		t.Errorf("Expected host 'localhost', got '%s'", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("Expected port 5432, got %d", cfg.Port)
	}
	if cfg.MaxConns != 25 {
		t.Errorf("Expected max conns 25, got %d", cfg.MaxConns)
	}
	if cfg.MinConns != 5 {
		t.Errorf("Expected min conns 5, got %d", cfg.MinConns)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", cfg.MaxRetries)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		Database: "testdb",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"

	if dsn != expected {
		t.Errorf("DSN mismatch:\nExpected: %s\nGot: %s", expected, dsn)
	}
}

func TestConnect_Integration(t *testing.T) {
	if os.Getenv("TEST_POSTGRES_HOST") == "" {
		t.Skip("Skipping test: TEST_POSTGRES_HOST not set")
	}

	cfg := getTestConfig()
	cfg.MaxRetries = 0

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, cfg)
	if err != nil {
		t.Skipf("Skipping test: database not available: %v", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
