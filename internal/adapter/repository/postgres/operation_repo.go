package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
)

const pgErrUniqueViolation = "23505"

const operationColumns = `id, account_id, type, amount, currency, reference, description, metadata, status, created_at, processed_at`

// OperationRepository implements usecase.OperationRepository.
type OperationRepository struct {
	pool Pool
}

// NewOperationRepository creates a new OperationRepository.
func NewOperationRepository(pool *pgxpool.Pool) *OperationRepository {
	return newOperationRepositoryWithPool(pool)
}

func newOperationRepositoryWithPool(pool Pool) *OperationRepository {
	return &OperationRepository{pool: pool}
}

// Create appends an operation record. A unique-violation on the
// reference index maps to domain.ErrDuplicateReference so callers can
// replay the already-applied result.
func (r *OperationRepository) Create(ctx context.Context, tx usecase.Transaction, op *domain.Operation) error {
	metadata, err := json.Marshal(op.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	query := `INSERT INTO operations (id, account_id, type, amount, currency, reference, description, metadata, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = tx.(*Tx).PgxTx().Exec(ctx, query,
		op.ID,
		op.AccountID,
		string(op.Type),
		decimalToNumeric(op.Amount),
		op.Currency,
		op.Reference,
		op.Description,
		metadata,
		string(op.Status),
		timeToPgTimestamptz(op.CreatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateReference
		}

		return err
	}

	return nil
}

// UpdateStatus transitions an operation to a terminal status.
func (r *OperationRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.OperationStatus, processedAt time.Time) error {
	query := `UPDATE operations SET status = $2, processed_at = $3 WHERE id = $1`

	tag, err := tx.(*Tx).PgxTx().Exec(ctx, query, id, string(status), timeToPgTimestamptz(processedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrOperationNotFound
	}

	return nil
}

// GetByID retrieves an operation by id.
func (r *OperationRepository) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1`

	return scanOperation(r.pool.QueryRow(ctx, query, id))
}

// GetByReference looks up a non-transfer operation by its caller-supplied
// reference, inside the caller's transaction so replay checks see rows
// written by concurrent requests.
func (r *OperationRepository) GetByReference(ctx context.Context, tx usecase.Transaction, accountID, currency, reference string) (*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations
		WHERE account_id = $1 AND currency = $2 AND reference = $3 AND type <> 'transfer'`

	return scanOperation(tx.(*Tx).PgxTx().QueryRow(ctx, query, accountID, currency, reference))
}

// ListByAccount lists operations for an account, newest first. An empty
// currency matches all currencies.
func (r *OperationRepository) ListByAccount(ctx context.Context, accountID, currency string, limit, offset int) ([]*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations
		WHERE account_id = $1 AND ($2 = '' OR currency = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, accountID, currency, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []*domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, rows.Err()
}

func scanOperation(row pgx.Row) (*domain.Operation, error) {
	var (
		op          domain.Operation
		opType      string
		status      string
		amount      pgtype.Numeric
		metadata    []byte
		createdAt   pgtype.Timestamptz
		processedAt pgtype.Timestamptz
	)

	err := row.Scan(&op.ID, &op.AccountID, &opType, &amount, &op.Currency,
		&op.Reference, &op.Description, &metadata, &status, &createdAt, &processedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOperationNotFound
		}

		return nil, err
	}

	op.Type = domain.OperationType(opType)
	op.Status = domain.OperationStatus(status)
	op.Amount = numericToDecimal(amount)
	op.CreatedAt = createdAt.Time

	if processedAt.Valid {
		t := processedAt.Time
		op.ProcessedAt = &t
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &op.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}

	return &op, nil
}
