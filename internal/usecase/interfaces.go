package usecase

import (
	"context"
	"time"

	"github.com/finvault/balance-ledger/internal/domain"
)

// BalanceRepository defines data access for balances.
type BalanceRepository interface {
	Get(ctx context.Context, accountID, currency string) (*domain.Balance, error)
	GetAll(ctx context.Context, accountID string) ([]*domain.Balance, error)
	// CreateIfAbsent lazily creates a zeroed balance row. It must be safe
	// under concurrent first use (upsert, not read-then-insert).
	CreateIfAbsent(ctx context.Context, tx Transaction, accountID, currency string, now time.Time) error
	GetForUpdate(ctx context.Context, tx Transaction, accountID, currency string) (*domain.Balance, error)
	// GetManyForUpdate locks balance rows for the given accounts in
	// ascending account id order regardless of input order.
	GetManyForUpdate(ctx context.Context, tx Transaction, accountIDs []string, currency string) ([]*domain.Balance, error)
	UpdateAmounts(ctx context.Context, tx Transaction, balance *domain.Balance) error
	CountInconsistent(ctx context.Context) (int64, error)
}

// OperationRepository defines data access for the append-only operation log.
type OperationRepository interface {
	Create(ctx context.Context, tx Transaction, op *domain.Operation) error
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.OperationStatus, processedAt time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Operation, error)
	GetByReference(ctx context.Context, tx Transaction, accountID, currency, reference string) (*domain.Operation, error)
	ListByAccount(ctx context.Context, accountID, currency string, limit, offset int) ([]*domain.Operation, error)
}

// SnapshotRepository defines data access for daily balance snapshots.
type SnapshotRepository interface {
	Upsert(ctx context.Context, tx Transaction, snapshot *domain.Snapshot) error
	ListByAccountDate(ctx context.Context, accountID string, date time.Time) ([]*domain.Snapshot, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
