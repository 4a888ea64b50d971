package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database
	// transaction. A transaction exceeding it rolls back entirely.
	DefaultTransactionTimeout = 10 * time.Second

	// BalanceCacheTTL is how long read-side balance lookups are cached.
	BalanceCacheTTL = 30 * time.Second

	// DefaultHistoryLimit and MaxHistoryLimit bound history page sizes.
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)
