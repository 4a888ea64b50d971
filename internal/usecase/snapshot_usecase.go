package usecase

import (
	"context"
	"time"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/infrastructure/metrics"
)

// SnapshotUseCase produces daily point-in-time captures of balances.
type SnapshotUseCase struct {
	txManager    TransactionManager
	balanceRepo  BalanceRepository
	snapshotRepo SnapshotRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewSnapshotUseCase creates a new SnapshotUseCase.
func NewSnapshotUseCase(
	txManager TransactionManager,
	balanceRepo BalanceRepository,
	snapshotRepo SnapshotRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *SnapshotUseCase {
	return &SnapshotUseCase{
		txManager:    txManager,
		balanceRepo:  balanceRepo,
		snapshotRepo: snapshotRepo,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// CreateDailySnapshot upserts one snapshot row per currency held by the
// account for the given day. Re-invocation for the same day overwrites
// values instead of duplicating rows. A zero date means today (UTC).
func (uc *SnapshotUseCase) CreateDailySnapshot(ctx context.Context, accountID string, date time.Time) ([]*domain.Snapshot, error) {
	start := time.Now()

	if err := domain.ValidateAccountID(accountID); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}
	date = date.UTC().Truncate(24 * time.Hour)

	balances, err := uc.balanceRepo.GetAll(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if len(balances) == 0 {
		return nil, nil
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	now := time.Now().UTC()

	snapshots := make([]*domain.Snapshot, 0, len(balances))
	for _, balance := range balances {
		snapshot := domain.SnapshotFromBalance(uc.idGen.Generate(), balance, date, now)
		if err := uc.snapshotRepo.Upsert(txCtx, tx, snapshot); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SnapshotsUpserted.Add(float64(len(snapshots)))
		uc.metrics.SnapshotDuration.Observe(time.Since(start).Seconds())
	}

	return snapshots, nil
}

// GetSnapshots lists an account's snapshots for a given day.
func (uc *SnapshotUseCase) GetSnapshots(ctx context.Context, accountID string, date time.Time) ([]*domain.Snapshot, error) {
	if err := domain.ValidateAccountID(accountID); err != nil {
		return nil, err
	}

	return uc.snapshotRepo.ListByAccountDate(ctx, accountID, date.UTC().Truncate(24*time.Hour))
}
