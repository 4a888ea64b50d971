package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/infrastructure/metrics"
)

// TransferUseCase moves funds between two accounts as one atomic unit.
type TransferUseCase struct {
	txManager     TransactionManager
	balanceRepo   BalanceRepository
	operationRepo OperationRepository
	retrier       Retrier
	cache         Cache
	idGen         IDGenerator
	metrics       *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	balanceRepo BalanceRepository,
	operationRepo OperationRepository,
	retrier Retrier,
	cache Cache,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:     txManager,
		balanceRepo:   balanceRepo,
		operationRepo: operationRepo,
		retrier:       retrier,
		cache:         cache,
		idGen:         idGen,
		metrics:       metrics,
	}
}

// TransferInput represents a requested transfer between two accounts.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Currency      string
	Reference     string
	Description   string
	Metadata      map[string]any
}

// TransferResult carries both updated balances and the outbound leg id.
type TransferResult struct {
	FromBalance *domain.Balance
	ToBalance   *domain.Balance
	OperationID string
}

func (in *TransferInput) validate() error {
	if err := domain.ValidateAccountID(in.FromAccountID); err != nil {
		return err
	}

	if err := domain.ValidateAccountID(in.ToAccountID); err != nil {
		return err
	}

	if in.FromAccountID == in.ToAccountID {
		return domain.ErrSelfTransfer
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

// Transfer debits the source and credits the destination inside a single
// transaction. Both rows are locked in ascending account id order so two
// opposite-direction transfers between the same pair cannot deadlock. If
// either leg fails, nothing is committed.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	start := time.Now()

	if err := input.validate(); err != nil {
		if uc.metrics != nil {
			uc.metrics.TransferErrors.WithLabelValues("validation").Inc()
		}
		return nil, err
	}

	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))

	var result *TransferResult

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		result, err = uc.transferOnce(ctx, input)
		return err
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransferErrors.WithLabelValues("failed").Inc()
		}
		return nil, err
	}

	uc.invalidateCache(ctx, input.FromAccountID, input.Currency)
	uc.invalidateCache(ctx, input.ToAccountID, input.Currency)

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
	}

	return result, nil
}

func (uc *TransferUseCase) transferOnce(ctx context.Context, input TransferInput) (*TransferResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	now := time.Now().UTC()

	// Lock rows in sorted order (DEADLOCK PREVENTION)
	accountIDs := []string{input.FromAccountID, input.ToAccountID}
	sort.Strings(accountIDs)

	for _, id := range accountIDs {
		if err := uc.balanceRepo.CreateIfAbsent(txCtx, tx, id, input.Currency, now); err != nil {
			return nil, err
		}
	}

	balances, err := uc.balanceRepo.GetManyForUpdate(txCtx, tx, accountIDs, input.Currency)
	if err != nil {
		return nil, err
	}

	var from, to *domain.Balance
	for _, b := range balances {
		switch b.AccountID {
		case input.FromAccountID:
			from = b
		case input.ToAccountID:
			to = b
		}
	}

	if from == nil || to == nil {
		return nil, domain.ErrBalanceNotFound
	}

	// Sufficiency is checked against the locked state, not a stale read.
	if err := from.ValidateDebit(input.Amount); err != nil {
		return nil, fmt.Errorf("%w: available=%s requested=%s", err, from.Available, input.Amount)
	}

	correlationID := uuid.NewString()

	outbound := uc.transferLeg(input, from.AccountID, to.AccountID, domain.TransferOutbound, correlationID, now)
	inbound := uc.transferLeg(input, to.AccountID, from.AccountID, domain.TransferInbound, correlationID, now)

	if err := uc.operationRepo.Create(txCtx, tx, outbound); err != nil {
		return nil, err
	}

	if err := uc.operationRepo.Create(txCtx, tx, inbound); err != nil {
		return nil, err
	}

	if err := from.Apply(domain.OperationDebit, input.Amount, now); err != nil {
		return nil, err
	}

	if err := to.Apply(domain.OperationCredit, input.Amount, now); err != nil {
		return nil, err
	}

	if err := uc.balanceRepo.UpdateAmounts(txCtx, tx, from); err != nil {
		return nil, err
	}

	if err := uc.balanceRepo.UpdateAmounts(txCtx, tx, to); err != nil {
		return nil, err
	}

	if err := uc.operationRepo.UpdateStatus(txCtx, tx, outbound.ID, domain.OperationCompleted, now); err != nil {
		return nil, err
	}

	if err := uc.operationRepo.UpdateStatus(txCtx, tx, inbound.ID, domain.OperationCompleted, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return &TransferResult{
		FromBalance: from,
		ToBalance:   to,
		OperationID: outbound.ID,
	}, nil
}

// transferLeg builds one of the two linked operation records of a transfer.
func (uc *TransferUseCase) transferLeg(input TransferInput, accountID, counterparty, legType, correlationID string, now time.Time) *domain.Operation {
	metadata := make(map[string]any, len(input.Metadata)+3)
	for k, v := range input.Metadata {
		metadata[k] = v
	}
	metadata[domain.MetaTransferType] = legType
	metadata[domain.MetaCounterparty] = counterparty
	metadata[domain.MetaCorrelationID] = correlationID

	return &domain.Operation{
		ID:          uc.idGen.Generate(),
		AccountID:   accountID,
		Type:        domain.OperationTransfer,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Reference:   input.Reference,
		Description: input.Description,
		Metadata:    metadata,
		Status:      domain.OperationPending,
		CreatedAt:   now,
	}
}

func (uc *TransferUseCase) invalidateCache(ctx context.Context, accountID, currency string) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, balanceCacheKey(accountID, currency))
}
