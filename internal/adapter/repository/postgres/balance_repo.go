package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
)

const balanceColumns = `account_id, currency, available, reserved, total, last_updated, created_at`

// BalanceRepository implements usecase.BalanceRepository.
type BalanceRepository struct {
	pool Pool
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return newBalanceRepositoryWithPool(pool)
}

func newBalanceRepositoryWithPool(pool Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool}
}

// Get retrieves a balance by account and currency.
func (r *BalanceRepository) Get(ctx context.Context, accountID, currency string) (*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE account_id = $1 AND currency = $2`

	return scanBalance(r.pool.QueryRow(ctx, query, accountID, currency))
}

// GetAll retrieves all balances held by an account, ordered by currency.
func (r *BalanceRepository) GetAll(ctx context.Context, accountID string) ([]*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE account_id = $1 ORDER BY currency`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBalances(rows)
}

// CreateIfAbsent inserts a zeroed balance row if none exists. The upsert
// keeps concurrent first use of an account safe without a prior read.
func (r *BalanceRepository) CreateIfAbsent(ctx context.Context, tx usecase.Transaction, accountID, currency string, now time.Time) error {
	query := `INSERT INTO balances (account_id, currency, available, reserved, total, last_updated, created_at)
		VALUES ($1, $2, 0, 0, 0, $3, $3)
		ON CONFLICT (account_id, currency) DO NOTHING`

	_, err := tx.(*Tx).PgxTx().Exec(ctx, query, accountID, currency, timeToPgTimestamptz(now))

	return err
}

// GetForUpdate retrieves a balance with a row-level FOR UPDATE lock.
func (r *BalanceRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, accountID, currency string) (*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE account_id = $1 AND currency = $2 FOR UPDATE`

	return scanBalance(tx.(*Tx).PgxTx().QueryRow(ctx, query, accountID, currency))
}

// GetManyForUpdate locks balance rows for the given accounts. Rows are
// locked in ascending account id order so concurrent transfers touching
// the same pair cannot deadlock.
func (r *BalanceRepository) GetManyForUpdate(ctx context.Context, tx usecase.Transaction, accountIDs []string, currency string) ([]*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances
		WHERE account_id = ANY($1) AND currency = $2
		ORDER BY account_id
		FOR UPDATE`

	rows, err := tx.(*Tx).PgxTx().Query(ctx, query, accountIDs, currency)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances, err := collectBalances(rows)
	if err != nil {
		return nil, err
	}

	if len(balances) != len(accountIDs) {
		return nil, domain.ErrBalanceNotFound
	}

	return balances, nil
}

// UpdateAmounts persists the three balance columns of an already-locked row.
func (r *BalanceRepository) UpdateAmounts(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error {
	query := `UPDATE balances
		SET available = $3, reserved = $4, total = $5, last_updated = $6
		WHERE account_id = $1 AND currency = $2`

	tag, err := tx.(*Tx).PgxTx().Exec(ctx, query,
		balance.AccountID,
		balance.Currency,
		decimalToNumeric(balance.Available),
		decimalToNumeric(balance.Reserved),
		decimalToNumeric(balance.Total),
		timeToPgTimestamptz(balance.LastUpdated),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrBalanceNotFound
	}

	return nil
}

// CountInconsistent counts rows violating the accounting invariants.
func (r *BalanceRepository) CountInconsistent(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM balances
		WHERE total <> available + reserved OR available < 0 OR reserved < 0`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	var (
		b                          domain.Balance
		available, reserved, total pgtype.Numeric
		lastUpdated, createdAt     pgtype.Timestamptz
	)

	err := row.Scan(&b.AccountID, &b.Currency, &available, &reserved, &total, &lastUpdated, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}

		return nil, err
	}

	b.Available = numericToDecimal(available)
	b.Reserved = numericToDecimal(reserved)
	b.Total = numericToDecimal(total)
	b.LastUpdated = lastUpdated.Time
	b.CreatedAt = createdAt.Time

	return &b, nil
}

func collectBalances(rows pgx.Rows) ([]*domain.Balance, error) {
	var balances []*domain.Balance

	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}
