package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
	"github.com/finvault/balance-ledger/tests/testutil"
)

func TestConcurrentBalanceUpdates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	d := newDeps(testDB)

	t.Run("100 concurrent debits no overdraft", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()
		testDB.SeedBalance(ctx, accountID, "USD", decimal.NewFromInt(1000), decimal.Zero)

		numDebits := 100
		debitAmount := decimal.NewFromInt(10)

		var (
			wg           sync.WaitGroup
			successCount atomic.Int32
			errorCount   atomic.Int32
		)

		wg.Add(numDebits)

		for i := range numDebits {
			go func() {
				defer wg.Done()

				_, err := d.ledgerUC.UpdateBalance(ctx, usecase.UpdateBalanceInput{
					AccountID: accountID,
					Amount:    debitAmount,
					Currency:  "USD",
					Type:      domain.OperationDebit,
					Reference: fmt.Sprintf("debit-%d", i),
				})
				if err != nil {
					errorCount.Add(1)
				} else {
					successCount.Add(1)
				}
			}()
		}

		wg.Wait()

		// All 100 should succeed (1000 / 10 = 100)
		if successCount.Load() != int32(numDebits) {
			t.Errorf("expected %d successful debits, got %d (errors: %d)", numDebits, successCount.Load(), errorCount.Load())
		}

		balance, err := d.ledgerUC.GetBalance(ctx, accountID, "USD")
		if err != nil {
			t.Fatalf("get balance failed: %v", err)
		}
		if !balance.Available.Equal(decimal.Zero) {
			t.Errorf("expected available 0, got %s", balance.Available)
		}
	})

	t.Run("concurrent debits reject overdraft", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()
		testDB.SeedBalance(ctx, accountID, "USD", decimal.NewFromInt(100), decimal.Zero)

		numDebits := 20
		debitAmount := decimal.NewFromInt(10) // 20 * 10 = 200 > 100

		var (
			wg           sync.WaitGroup
			successCount atomic.Int32
		)

		wg.Add(numDebits)

		for i := range numDebits {
			go func() {
				defer wg.Done()

				_, err := d.ledgerUC.UpdateBalance(ctx, usecase.UpdateBalanceInput{
					AccountID: accountID,
					Amount:    debitAmount,
					Currency:  "USD",
					Type:      domain.OperationDebit,
					Reference: fmt.Sprintf("overdraft-%d", i),
				})
				if err == nil {
					successCount.Add(1)
				}
			}()
		}

		wg.Wait()

		// Only 10 should succeed (100 / 10 = 10)
		if successCount.Load() != 10 {
			t.Errorf("expected 10 successful debits, got %d", successCount.Load())
		}

		balance, err := d.ledgerUC.GetBalance(ctx, accountID, "USD")
		if err != nil {
			t.Fatalf("get balance failed: %v", err)
		}
		if !balance.Available.Equal(decimal.Zero) {
			t.Errorf("expected available 0, got %s", balance.Available)
		}
	})

	t.Run("concurrent mixed operations preserve total invariant", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		accountID := testutil.GenerateID()
		testDB.SeedBalance(ctx, accountID, "USD", decimal.NewFromInt(500), decimal.Zero)

		numPairs := 25

		var wg sync.WaitGroup
		wg.Add(numPairs * 2)

		for i := range numPairs {
			go func() {
				defer wg.Done()

				_, _ = d.ledgerUC.ReserveBalance(ctx, accountID, decimal.NewFromInt(5), "USD", fmt.Sprintf("reserve-%d", i), "")
			}()
			go func() {
				defer wg.Done()

				_, _ = d.ledgerUC.UpdateBalance(ctx, usecase.UpdateBalanceInput{
					AccountID: accountID,
					Amount:    decimal.NewFromInt(5),
					Currency:  "USD",
					Type:      domain.OperationCredit,
					Reference: fmt.Sprintf("credit-%d", i),
				})
			}()
		}

		wg.Wait()

		balance, err := d.ledgerUC.GetBalance(ctx, accountID, "USD")
		if err != nil {
			t.Fatalf("get balance failed: %v", err)
		}
		if !balance.Total.Equal(balance.Available.Add(balance.Reserved)) {
			t.Errorf("total %s != available %s + reserved %s", balance.Total, balance.Available, balance.Reserved)
		}
		// 500 + 25*5 credited, all still held by the account
		if !balance.Total.Equal(decimal.NewFromInt(625)) {
			t.Errorf("expected total 625, got %s", balance.Total)
		}

		if err := d.consistencyUC.CheckConsistency(ctx); err != nil {
			t.Errorf("expected consistent ledger, got %v", err)
		}
	})
}
