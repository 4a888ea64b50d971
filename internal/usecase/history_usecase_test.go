package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
	"github.com/finvault/balance-ledger/internal/usecase/mocks"
)

func seedOperations(t *testing.T, repo *mocks.MockOperationRepository, accountID, currency string, count int) {
	t.Helper()

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		op := &domain.Operation{
			AccountID: accountID,
			Type:      domain.OperationCredit,
			Amount:    decimal.NewFromInt(int64(i + 1)),
			Currency:  currency,
			Status:    domain.OperationCompleted,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		op.ID = "op-" + accountID + "-" + currency + "-" + op.Amount.String()
		op.Reference = "ref-" + op.ID
		if err := repo.Create(context.Background(), nil, op); err != nil {
			t.Fatalf("seeding operation: %v", err)
		}
	}
}

func TestHistoryUseCase_GetBalanceHistory(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.GetBalanceHistoryInput
		seed      func(t *testing.T, repo *mocks.MockOperationRepository)
		wantErr   error
		wantCount int
	}{
		{
			name:  "lists newest first",
			input: usecase.GetBalanceHistoryInput{AccountID: "acc-1", Currency: "USD"},
			seed: func(t *testing.T, repo *mocks.MockOperationRepository) {
				seedOperations(t, repo, "acc-1", "USD", 3)
			},
			wantCount: 3,
		},
		{
			name:  "currency filter excludes other currencies",
			input: usecase.GetBalanceHistoryInput{AccountID: "acc-1", Currency: "EUR"},
			seed: func(t *testing.T, repo *mocks.MockOperationRepository) {
				seedOperations(t, repo, "acc-1", "USD", 3)
				seedOperations(t, repo, "acc-1", "EUR", 2)
			},
			wantCount: 2,
		},
		{
			name:  "no filter returns all currencies",
			input: usecase.GetBalanceHistoryInput{AccountID: "acc-1"},
			seed: func(t *testing.T, repo *mocks.MockOperationRepository) {
				seedOperations(t, repo, "acc-1", "USD", 3)
				seedOperations(t, repo, "acc-1", "EUR", 2)
			},
			wantCount: 5,
		},
		{
			name:      "empty history",
			input:     usecase.GetBalanceHistoryInput{AccountID: "acc-1", Currency: "USD"},
			wantCount: 0,
		},
		{
			name:    "missing account id",
			input:   usecase.GetBalanceHistoryInput{Currency: "USD"},
			wantErr: domain.ErrInvalidAccountID,
		},
		{
			name:    "unknown currency",
			input:   usecase.GetBalanceHistoryInput{AccountID: "acc-1", Currency: "ZZZ"},
			wantErr: domain.ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockOperationRepository()
			if tt.seed != nil {
				tt.seed(t, repo)
			}

			uc := usecase.NewHistoryUseCase(repo)

			ops, err := uc.GetBalanceHistory(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(ops) != tt.wantCount {
				t.Fatalf("expected %d operations, got %d", tt.wantCount, len(ops))
			}
			for i := 1; i < len(ops); i++ {
				if ops[i].CreatedAt.After(ops[i-1].CreatedAt) {
					t.Errorf("operations not newest first at index %d", i)
				}
			}
		})
	}
}

func TestHistoryUseCase_GetBalanceHistory_Paging(t *testing.T) {
	repo := mocks.NewMockOperationRepository()
	seedOperations(t, repo, "acc-1", "USD", 30)

	uc := usecase.NewHistoryUseCase(repo)

	// Default limit applies when none is given.
	ops, err := uc.GetBalanceHistory(context.Background(), usecase.GetBalanceHistoryInput{
		AccountID: "acc-1",
		Currency:  "USD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != usecase.DefaultHistoryLimit {
		t.Errorf("expected default limit %d, got %d", usecase.DefaultHistoryLimit, len(ops))
	}

	// Oversized limits clamp to the maximum.
	var gotLimit int
	repo.ListByAccountFunc = func(ctx context.Context, accountID, currency string, limit, offset int) ([]*domain.Operation, error) {
		gotLimit = limit
		return nil, nil
	}
	if _, err := uc.GetBalanceHistory(context.Background(), usecase.GetBalanceHistoryInput{
		AccountID: "acc-1",
		Currency:  "USD",
		Limit:     10_000,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != usecase.MaxHistoryLimit {
		t.Errorf("expected limit clamped to %d, got %d", usecase.MaxHistoryLimit, gotLimit)
	}

	// Offset pages past already-seen rows.
	repo.ListByAccountFunc = nil
	first, _ := uc.GetBalanceHistory(context.Background(), usecase.GetBalanceHistoryInput{
		AccountID: "acc-1", Currency: "USD", Limit: 10,
	})
	second, _ := uc.GetBalanceHistory(context.Background(), usecase.GetBalanceHistoryInput{
		AccountID: "acc-1", Currency: "USD", Limit: 10, Offset: 10,
	})
	if len(first) != 10 || len(second) != 10 {
		t.Fatalf("expected two full pages, got %d and %d", len(first), len(second))
	}
	if first[0].ID == second[0].ID {
		t.Error("offset did not advance past the first page")
	}
}

func TestHistoryUseCase_GetOperation(t *testing.T) {
	repo := mocks.NewMockOperationRepository()
	seedOperations(t, repo, "acc-1", "USD", 1)

	uc := usecase.NewHistoryUseCase(repo)

	ops, err := uc.GetBalanceHistory(context.Background(), usecase.GetBalanceHistoryInput{AccountID: "acc-1"})
	if err != nil || len(ops) != 1 {
		t.Fatalf("seed lookup failed: %v", err)
	}

	got, err := uc.GetOperation(context.Background(), ops[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != ops[0].ID {
		t.Errorf("expected operation %s, got %s", ops[0].ID, got.ID)
	}

	if _, err := uc.GetOperation(context.Background(), "missing"); !errors.Is(err, domain.ErrOperationNotFound) {
		t.Errorf("expected ErrOperationNotFound, got %v", err)
	}
}
