package usecase

import (
	"context"
	"strings"

	"github.com/finvault/balance-ledger/internal/domain"
)

// HistoryUseCase serves read-side operation history queries.
type HistoryUseCase struct {
	operationRepo OperationRepository
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(operationRepo OperationRepository) *HistoryUseCase {
	return &HistoryUseCase{operationRepo: operationRepo}
}

// GetBalanceHistoryInput represents input for listing operations.
type GetBalanceHistoryInput struct {
	AccountID string
	Currency  string // optional filter
	Limit     int
	Offset    int
}

// GetBalanceHistory lists operations for an account, newest first.
func (uc *HistoryUseCase) GetBalanceHistory(ctx context.Context, input GetBalanceHistoryInput) ([]*domain.Operation, error) {
	if err := domain.ValidateAccountID(input.AccountID); err != nil {
		return nil, err
	}

	if input.Currency != "" {
		if err := domain.ValidateCurrency(input.Currency); err != nil {
			return nil, err
		}
		input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	}

	if input.Limit <= 0 {
		input.Limit = DefaultHistoryLimit
	}

	if input.Limit > MaxHistoryLimit {
		input.Limit = MaxHistoryLimit
	}

	if input.Offset < 0 {
		input.Offset = 0
	}

	return uc.operationRepo.ListByAccount(ctx, input.AccountID, input.Currency, input.Limit, input.Offset)
}

// GetOperation retrieves a single operation by id.
func (uc *HistoryUseCase) GetOperation(ctx context.Context, id string) (*domain.Operation, error) {
	return uc.operationRepo.GetByID(ctx, id)
}
