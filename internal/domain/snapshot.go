package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is an immutable daily capture of a balance, keyed by
// (account, currency, date). Re-running a snapshot for the same day
// overwrites the values rather than duplicating the row.
type Snapshot struct {
	ID        string
	AccountID string
	Currency  string
	Date      time.Time
	Available decimal.Decimal
	Reserved  decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SnapshotFromBalance captures the current state of b for a given day.
func SnapshotFromBalance(id string, b *Balance, date, now time.Time) *Snapshot {
	return &Snapshot{
		ID:        id,
		AccountID: b.AccountID,
		Currency:  b.Currency,
		Date:      date,
		Available: b.Available,
		Reserved:  b.Reserved,
		Total:     b.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
