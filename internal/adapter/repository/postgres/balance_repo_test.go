package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
)

func balanceColumnNames() []string {
	return []string{"account_id", "currency", "available", "reserved", "total", "last_updated", "created_at"}
}

func balanceRow(accountID, currency string, available, reserved, total int64, at time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(balanceColumnNames()).AddRow(
		accountID, currency,
		decimalToNumeric(decimal.NewFromInt(available)),
		decimalToNumeric(decimal.NewFromInt(reserved)),
		decimalToNumeric(decimal.NewFromInt(total)),
		timeToPgTimestamptz(at),
		timeToPgTimestamptz(at),
	)
}

func beginTestTx(t *testing.T, mockPool pgxmock.PgxPoolIface) usecase.Transaction {
	t.Helper()
	mockPool.ExpectBegin()
	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	return tx
}

func TestBalanceRepositoryGet(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	mockPool.ExpectQuery("SELECT (.+) FROM balances WHERE account_id").
		WithArgs("acc-1", "USD").
		WillReturnRows(balanceRow("acc-1", "USD", 80, 20, 100, now))

	repo := newBalanceRepositoryWithPool(mockPool)

	balance, err := repo.Get(context.Background(), "acc-1", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !balance.Available.Equal(decimal.NewFromInt(80)) {
		t.Errorf("available: expected 80, got %s", balance.Available)
	}
	if !balance.Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total: expected 100, got %s", balance.Total)
	}

	assertExpectations(t, mockPool)
}

func TestBalanceRepositoryGetNotFound(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery("SELECT (.+) FROM balances WHERE account_id").
		WithArgs("acc-missing", "USD").
		WillReturnRows(pgxmock.NewRows(balanceColumnNames()))

	repo := newBalanceRepositoryWithPool(mockPool)

	_, err := repo.Get(context.Background(), "acc-missing", "USD")
	if !errors.Is(err, domain.ErrBalanceNotFound) {
		t.Fatalf("expected ErrBalanceNotFound, got %v", err)
	}
}

func TestBalanceRepositoryGetAll(t *testing.T) {
	mockPool := newMockPool(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(balanceColumnNames()).
		AddRow("acc-1", "EUR", decimalToNumeric(decimal.NewFromInt(5)), decimalToNumeric(decimal.Zero), decimalToNumeric(decimal.NewFromInt(5)), timeToPgTimestamptz(now), timeToPgTimestamptz(now)).
		AddRow("acc-1", "USD", decimalToNumeric(decimal.NewFromInt(10)), decimalToNumeric(decimal.Zero), decimalToNumeric(decimal.NewFromInt(10)), timeToPgTimestamptz(now), timeToPgTimestamptz(now))

	mockPool.ExpectQuery("SELECT (.+) FROM balances WHERE account_id (.+) ORDER BY currency").
		WithArgs("acc-1").
		WillReturnRows(rows)

	repo := newBalanceRepositoryWithPool(mockPool)

	balances, err := repo.GetAll(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(balances))
	}
	if balances[0].Currency != "EUR" || balances[1].Currency != "USD" {
		t.Errorf("unexpected currency order: %s, %s", balances[0].Currency, balances[1].Currency)
	}

	assertExpectations(t, mockPool)
}

func TestBalanceRepositoryCreateIfAbsent(t *testing.T) {
	mockPool := newMockPool(t)
	tx := beginTestTx(t, mockPool)
	now := time.Now().UTC()

	mockPool.ExpectExec("INSERT INTO balances").
		WithArgs("acc-1", "USD", timeToPgTimestamptz(now)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := newBalanceRepositoryWithPool(mockPool)

	if err := repo.CreateIfAbsent(context.Background(), tx, "acc-1", "USD", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestBalanceRepositoryGetForUpdate(t *testing.T) {
	mockPool := newMockPool(t)
	tx := beginTestTx(t, mockPool)
	now := time.Now().UTC()

	mockPool.ExpectQuery("SELECT (.+) FROM balances WHERE account_id (.+) FOR UPDATE").
		WithArgs("acc-1", "USD").
		WillReturnRows(balanceRow("acc-1", "USD", 30, 0, 30, now))

	repo := newBalanceRepositoryWithPool(mockPool)

	balance, err := repo.GetForUpdate(context.Background(), tx, "acc-1", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Available.Equal(decimal.NewFromInt(30)) {
		t.Errorf("available: expected 30, got %s", balance.Available)
	}

	assertExpectations(t, mockPool)
}

func TestBalanceRepositoryGetManyForUpdateMissingRow(t *testing.T) {
	mockPool := newMockPool(t)
	tx := beginTestTx(t, mockPool)
	now := time.Now().UTC()

	// Two accounts requested, only one row comes back.
	mockPool.ExpectQuery("SELECT (.+) FROM balances(.+)FOR UPDATE").
		WithArgs([]string{"acc-a", "acc-b"}, "USD").
		WillReturnRows(balanceRow("acc-a", "USD", 10, 0, 10, now))

	repo := newBalanceRepositoryWithPool(mockPool)

	_, err := repo.GetManyForUpdate(context.Background(), tx, []string{"acc-a", "acc-b"}, "USD")
	if !errors.Is(err, domain.ErrBalanceNotFound) {
		t.Fatalf("expected ErrBalanceNotFound, got %v", err)
	}
}

func TestBalanceRepositoryUpdateAmounts(t *testing.T) {
	mockPool := newMockPool(t)
	tx := beginTestTx(t, mockPool)

	balance := &domain.Balance{
		AccountID:   "acc-1",
		Currency:    "USD",
		Available:   decimal.NewFromInt(70),
		Reserved:    decimal.NewFromInt(30),
		Total:       decimal.NewFromInt(100),
		LastUpdated: time.Now().UTC(),
	}

	mockPool.ExpectExec("UPDATE balances").
		WithArgs("acc-1", "USD",
			decimalToNumeric(balance.Available),
			decimalToNumeric(balance.Reserved),
			decimalToNumeric(balance.Total),
			timeToPgTimestamptz(balance.LastUpdated)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := newBalanceRepositoryWithPool(mockPool)

	if err := repo.UpdateAmounts(context.Background(), tx, balance); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestBalanceRepositoryUpdateAmountsNotFound(t *testing.T) {
	mockPool := newMockPool(t)
	tx := beginTestTx(t, mockPool)

	mockPool.ExpectExec("UPDATE balances").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := newBalanceRepositoryWithPool(mockPool)

	err := repo.UpdateAmounts(context.Background(), tx, &domain.Balance{AccountID: "acc-x", Currency: "USD"})
	if !errors.Is(err, domain.ErrBalanceNotFound) {
		t.Fatalf("expected ErrBalanceNotFound, got %v", err)
	}
}

func TestBalanceRepositoryCountInconsistent(t *testing.T) {
	mockPool := newMockPool(t)

	mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM balances").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	repo := newBalanceRepositoryWithPool(mockPool)

	count, err := repo.CountInconsistent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2, got %d", count)
	}

	assertExpectations(t, mockPool)
}
