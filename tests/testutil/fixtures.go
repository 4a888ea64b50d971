package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/infrastructure/postgres"
)

// TestDB provides isolated test database connections.
type TestDB struct {
	Pool *pgxpool.Pool
	t    *testing.T
}

// NewTestDB connects to the database named by TEST_DATABASE_URL and
// applies migrations. Tests are skipped when the variable is unset.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	migrationsPath := "migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		// Relative path when running from tests/integration.
		migrationsPath = "../../migrations"
	}

	if err := postgres.RunMigrations(dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	return &TestDB{Pool: pool, t: t}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all data from tables.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `
		TRUNCATE TABLE operations CASCADE;
		TRUNCATE TABLE balance_snapshots CASCADE;
		TRUNCATE TABLE balances CASCADE;
	`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// SeedBalance inserts a balance row with the given amounts.
func (db *TestDB) SeedBalance(ctx context.Context, accountID, currency string, available, reserved decimal.Decimal) *domain.Balance {
	db.t.Helper()

	now := time.Now().UTC()
	total := available.Add(reserved)

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO balances (account_id, currency, available, reserved, total, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		accountID, currency, available.String(), reserved.String(), total.String(), now,
	)
	if err != nil {
		db.t.Fatalf("failed to seed balance: %v", err)
	}

	return &domain.Balance{
		AccountID:   accountID,
		Currency:    currency,
		Available:   available,
		Reserved:    reserved,
		Total:       total,
		LastUpdated: now,
		CreatedAt:   now,
	}
}

// GenerateID generates a new ULID.
func GenerateID() string {
	return ulid.Make().String()
}
