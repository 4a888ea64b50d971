package integration

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
	"github.com/finvault/balance-ledger/tests/testutil"
)

func TestLedgerOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	d := newDeps(testDB)

	t.Run("credit creates balance on first use", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()

		balance, err := d.ledgerUC.UpdateBalance(ctx, usecase.UpdateBalanceInput{
			AccountID: accountID,
			Amount:    decimal.NewFromInt(100),
			Currency:  "USD",
			Type:      domain.OperationCredit,
			Reference: "credit-1",
		})
		if err != nil {
			t.Fatalf("credit failed: %v", err)
		}

		if !balance.Available.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected available 100, got %s", balance.Available)
		}
		if !balance.Total.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total 100, got %s", balance.Total)
		}
	})

	t.Run("debit rejects insufficient funds", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()
		testDB.SeedBalance(ctx, accountID, "USD", decimal.NewFromInt(50), decimal.Zero)

		_, err := d.ledgerUC.UpdateBalance(ctx, usecase.UpdateBalanceInput{
			AccountID: accountID,
			Amount:    decimal.NewFromInt(100),
			Currency:  "USD",
			Type:      domain.OperationDebit,
			Reference: "debit-1",
		})
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		balance, err := d.ledgerUC.GetBalance(ctx, accountID, "USD")
		if err != nil {
			t.Fatalf("get balance failed: %v", err)
		}
		if !balance.Available.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected available unchanged at 50, got %s", balance.Available)
		}
	})

	t.Run("reserve and release round trip", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()
		testDB.SeedBalance(ctx, accountID, "USD", decimal.NewFromInt(100), decimal.Zero)

		balance, err := d.ledgerUC.ReserveBalance(ctx, accountID, decimal.NewFromInt(40), "USD", "hold-1", "")
		if err != nil {
			t.Fatalf("reserve failed: %v", err)
		}
		if !balance.Available.Equal(decimal.NewFromInt(60)) || !balance.Reserved.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("expected 60/40 after reserve, got %s/%s", balance.Available, balance.Reserved)
		}
		if !balance.Total.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total unchanged at 100, got %s", balance.Total)
		}

		balance, err = d.ledgerUC.ReleaseBalance(ctx, accountID, decimal.NewFromInt(40), "USD", "hold-1-release", "")
		if err != nil {
			t.Fatalf("release failed: %v", err)
		}
		if !balance.Available.Equal(decimal.NewFromInt(100)) || !balance.Reserved.Equal(decimal.Zero) {
			t.Fatalf("expected 100/0 after release, got %s/%s", balance.Available, balance.Reserved)
		}
	})

	t.Run("duplicate reference returns current balance without reapplying", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()

		input := usecase.UpdateBalanceInput{
			AccountID: accountID,
			Amount:    decimal.NewFromInt(25),
			Currency:  "USD",
			Type:      domain.OperationCredit,
			Reference: "topup-1",
		}

		if _, err := d.ledgerUC.UpdateBalance(ctx, input); err != nil {
			t.Fatalf("first credit failed: %v", err)
		}

		balance, err := d.ledgerUC.UpdateBalance(ctx, input)
		if err != nil {
			t.Fatalf("replayed credit failed: %v", err)
		}
		if !balance.Available.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected replay to leave available at 25, got %s", balance.Available)
		}

		ops, err := d.historyUC.GetBalanceHistory(ctx, usecase.GetBalanceHistoryInput{AccountID: accountID})
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}
		if len(ops) != 1 {
			t.Errorf("expected a single recorded operation, got %d", len(ops))
		}
	})

	t.Run("history is newest first with currency filter", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()

		for i := range 3 {
			_, err := d.ledgerUC.UpdateBalance(ctx, usecase.UpdateBalanceInput{
				AccountID: accountID,
				Amount:    decimal.NewFromInt(int64(i + 1)),
				Currency:  "USD",
				Type:      domain.OperationCredit,
				Reference: fmt.Sprintf("usd-%d", i),
			})
			if err != nil {
				t.Fatalf("credit %d failed: %v", i, err)
			}
		}
		_, err := d.ledgerUC.UpdateBalance(ctx, usecase.UpdateBalanceInput{
			AccountID: accountID,
			Amount:    decimal.NewFromInt(5),
			Currency:  "EUR",
			Type:      domain.OperationCredit,
			Reference: "eur-0",
		})
		if err != nil {
			t.Fatalf("eur credit failed: %v", err)
		}

		ops, err := d.historyUC.GetBalanceHistory(ctx, usecase.GetBalanceHistoryInput{
			AccountID: accountID,
			Currency:  "USD",
		})
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}
		if len(ops) != 3 {
			t.Fatalf("expected 3 USD operations, got %d", len(ops))
		}
		for i := 1; i < len(ops); i++ {
			if ops[i].CreatedAt.After(ops[i-1].CreatedAt) {
				t.Errorf("operations not in newest-first order at index %d", i)
			}
		}
	})

	t.Run("consistency check passes on a clean ledger", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()
		testDB.SeedBalance(ctx, accountID, "USD", decimal.NewFromInt(10), decimal.NewFromInt(5))

		if err := d.consistencyUC.CheckConsistency(ctx); err != nil {
			t.Fatalf("expected clean ledger, got %v", err)
		}
	})
}
