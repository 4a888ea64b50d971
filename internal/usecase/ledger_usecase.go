package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/infrastructure/metrics"
)

// LedgerUseCase applies single-account operations (credit, debit, reserve,
// release) to balances. Each call runs in one database transaction with the
// balance row locked for the duration of validate+mutate.
type LedgerUseCase struct {
	txManager     TransactionManager
	balanceRepo   BalanceRepository
	operationRepo OperationRepository
	retrier       Retrier
	cache         Cache
	idGen         IDGenerator
	metrics       *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	balanceRepo BalanceRepository,
	operationRepo OperationRepository,
	retrier Retrier,
	cache Cache,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:     txManager,
		balanceRepo:   balanceRepo,
		operationRepo: operationRepo,
		retrier:       retrier,
		cache:         cache,
		idGen:         idGen,
		metrics:       metrics,
	}
}

// UpdateBalanceInput represents one requested balance mutation.
type UpdateBalanceInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Currency    string
	Type        domain.OperationType
	Reference   string
	Description string
	Metadata    map[string]any
}

func (in *UpdateBalanceInput) validate() error {
	if err := domain.ValidateAccountID(in.AccountID); err != nil {
		return err
	}

	if !in.Type.Valid() || in.Type == domain.OperationTransfer {
		return domain.ErrInvalidOperationType
	}

	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}

	if err := domain.ValidateCurrency(in.Currency); err != nil {
		return err
	}

	if err := domain.ValidateReference(in.Reference); err != nil {
		return err
	}

	return domain.ValidateMetadata(in.Metadata)
}

// UpdateBalance applies one operation atomically: fetch-or-create the
// balance row under a row lock, validate against current state, append the
// operation as pending, persist the new amounts and mark the operation
// completed. Any failure rolls the whole transaction back. A repeated
// reference returns the current balance without double-applying.
func (uc *LedgerUseCase) UpdateBalance(ctx context.Context, input UpdateBalanceInput) (*domain.Balance, error) {
	start := time.Now()

	if err := input.validate(); err != nil {
		return nil, err
	}

	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))

	var result *domain.Balance

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		result, err = uc.updateOnce(ctx, input)
		return err
	})
	if errors.Is(err, domain.ErrDuplicateReference) {
		// Lost a race against a concurrent request carrying the same
		// reference. The other request applied the operation; report
		// the current state instead of double-applying.
		return uc.balanceRepo.Get(ctx, input.AccountID, input.Currency)
	}
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.OperationsProcessed.WithLabelValues(string(input.Type), "failed").Inc()
		}
		return nil, err
	}

	uc.invalidateCache(ctx, input.AccountID, input.Currency)

	if uc.metrics != nil {
		uc.metrics.OperationsProcessed.WithLabelValues(string(input.Type), "completed").Inc()
		uc.metrics.OperationDuration.Observe(time.Since(start).Seconds())
		amountFloat, _ := input.Amount.Float64()
		uc.metrics.OperationAmount.Observe(amountFloat)
		uc.metrics.BalanceTotal.WithLabelValues(result.AccountID, result.Currency).Set(mustFloat(result.Total))
	}

	return result, nil
}

func (uc *LedgerUseCase) updateOnce(ctx context.Context, input UpdateBalanceInput) (*domain.Balance, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	now := time.Now().UTC()

	if err := uc.balanceRepo.CreateIfAbsent(txCtx, tx, input.AccountID, input.Currency, now); err != nil {
		return nil, err
	}

	balance, err := uc.balanceRepo.GetForUpdate(txCtx, tx, input.AccountID, input.Currency)
	if err != nil {
		return nil, err
	}

	// Idempotent replay: a completed operation with the same reference
	// short-circuits to the current state.
	existing, err := uc.operationRepo.GetByReference(txCtx, tx, input.AccountID, input.Currency, input.Reference)
	if err != nil && !errors.Is(err, domain.ErrOperationNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status == domain.OperationCompleted {
		if err := tx.Commit(txCtx); err != nil {
			return nil, err
		}
		return balance, nil
	}

	if err := balance.Validate(input.Type, input.Amount); err != nil {
		return nil, fmt.Errorf("%w: available=%s reserved=%s requested=%s",
			err, balance.Available, balance.Reserved, input.Amount)
	}

	op := &domain.Operation{
		ID:          uc.idGen.Generate(),
		AccountID:   input.AccountID,
		Type:        input.Type,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Reference:   input.Reference,
		Description: input.Description,
		Metadata:    input.Metadata,
		Status:      domain.OperationPending,
		CreatedAt:   now,
	}

	if err := uc.operationRepo.Create(txCtx, tx, op); err != nil {
		return nil, err
	}

	if err := balance.Apply(input.Type, input.Amount, now); err != nil {
		return nil, err
	}

	if err := uc.balanceRepo.UpdateAmounts(txCtx, tx, balance); err != nil {
		return nil, err
	}

	if err := uc.operationRepo.UpdateStatus(txCtx, tx, op.ID, domain.OperationCompleted, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return balance, nil
}

// ReserveBalance moves amount from available to reserved funds.
func (uc *LedgerUseCase) ReserveBalance(ctx context.Context, accountID string, amount decimal.Decimal, currency, reference, description string) (*domain.Balance, error) {
	return uc.UpdateBalance(ctx, UpdateBalanceInput{
		AccountID:   accountID,
		Amount:      amount,
		Currency:    currency,
		Type:        domain.OperationReserve,
		Reference:   reference,
		Description: description,
	})
}

// ReleaseBalance moves amount from reserved back to available funds.
func (uc *LedgerUseCase) ReleaseBalance(ctx context.Context, accountID string, amount decimal.Decimal, currency, reference, description string) (*domain.Balance, error) {
	return uc.UpdateBalance(ctx, UpdateBalanceInput{
		AccountID:   accountID,
		Amount:      amount,
		Currency:    currency,
		Type:        domain.OperationRelease,
		Reference:   reference,
		Description: description,
	})
}

// GetBalance retrieves one balance, consulting the read cache first.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, accountID, currency string) (*domain.Balance, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, balanceCacheKey(accountID, currency)); err == nil {
			var cached domain.Balance
			if err := json.Unmarshal(data, &cached); err == nil {
				if uc.metrics != nil {
					uc.metrics.CacheHits.Inc()
				}
				return &cached, nil
			}
		}
		if uc.metrics != nil {
			uc.metrics.CacheMisses.Inc()
		}
	}

	balance, err := uc.balanceRepo.Get(ctx, accountID, currency)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(balance); err == nil {
			_ = uc.cache.Set(ctx, balanceCacheKey(accountID, currency), data, BalanceCacheTTL)
		}
	}

	return balance, nil
}

// GetAllBalances retrieves every currency balance held by an account.
func (uc *LedgerUseCase) GetAllBalances(ctx context.Context, accountID string) ([]*domain.Balance, error) {
	if err := domain.ValidateAccountID(accountID); err != nil {
		return nil, err
	}

	return uc.balanceRepo.GetAll(ctx, accountID)
}

func (uc *LedgerUseCase) invalidateCache(ctx context.Context, accountID, currency string) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, balanceCacheKey(accountID, currency))
}

func balanceCacheKey(accountID, currency string) string {
	return "balance:" + accountID + ":" + currency
}

func mustFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
