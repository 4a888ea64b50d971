package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
)

// SnapshotRepository implements usecase.SnapshotRepository.
type SnapshotRepository struct {
	pool Pool
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return newSnapshotRepositoryWithPool(pool)
}

func newSnapshotRepositoryWithPool(pool Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Upsert writes a snapshot for (account, currency, day). Re-running the
// same day overwrites the amounts instead of duplicating the row.
func (r *SnapshotRepository) Upsert(ctx context.Context, tx usecase.Transaction, snapshot *domain.Snapshot) error {
	query := `INSERT INTO balance_snapshots (id, account_id, currency, snapshot_date, available, reserved, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (account_id, currency, snapshot_date) DO UPDATE
		SET available = EXCLUDED.available,
			reserved = EXCLUDED.reserved,
			total = EXCLUDED.total,
			updated_at = EXCLUDED.updated_at`

	_, err := tx.(*Tx).PgxTx().Exec(ctx, query,
		snapshot.ID,
		snapshot.AccountID,
		snapshot.Currency,
		pgtype.Date{Time: snapshot.Date, Valid: true},
		decimalToNumeric(snapshot.Available),
		decimalToNumeric(snapshot.Reserved),
		decimalToNumeric(snapshot.Total),
		timeToPgTimestamptz(snapshot.CreatedAt),
	)

	return err
}

// ListByAccountDate lists an account's snapshots for one day, ordered by
// currency.
func (r *SnapshotRepository) ListByAccountDate(ctx context.Context, accountID string, date time.Time) ([]*domain.Snapshot, error) {
	query := `SELECT id, account_id, currency, snapshot_date, available, reserved, total, created_at, updated_at
		FROM balance_snapshots
		WHERE account_id = $1 AND snapshot_date = $2
		ORDER BY currency`

	rows, err := r.pool.Query(ctx, query, accountID, pgtype.Date{Time: date, Valid: true})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*domain.Snapshot
	for rows.Next() {
		var (
			s                          domain.Snapshot
			snapshotDate               pgtype.Date
			available, reserved, total pgtype.Numeric
			createdAt, updatedAt       pgtype.Timestamptz
		)

		err := rows.Scan(&s.ID, &s.AccountID, &s.Currency, &snapshotDate,
			&available, &reserved, &total, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}

		s.Date = snapshotDate.Time
		s.Available = numericToDecimal(available)
		s.Reserved = numericToDecimal(reserved)
		s.Total = numericToDecimal(total)
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		snapshots = append(snapshots, &s)
	}

	return snapshots, rows.Err()
}
