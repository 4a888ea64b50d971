package usecase

import (
	"context"
	"errors"
	"fmt"
)

// ErrInconsistentLedger is returned when any balance row violates the
// accounting invariants (negative funds or total != available + reserved).
var ErrInconsistentLedger = errors.New("ledger is inconsistent")

// ConsistencyUseCase verifies ledger-wide accounting invariants.
type ConsistencyUseCase struct {
	balanceRepo BalanceRepository
}

// NewConsistencyUseCase creates a new ConsistencyUseCase.
func NewConsistencyUseCase(balanceRepo BalanceRepository) *ConsistencyUseCase {
	return &ConsistencyUseCase{balanceRepo: balanceRepo}
}

// CheckConsistency scans for balance rows breaking the invariants.
func (uc *ConsistencyUseCase) CheckConsistency(ctx context.Context) error {
	count, err := uc.balanceRepo.CountInconsistent(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return fmt.Errorf("%w: %d balance rows violate invariants", ErrInconsistentLedger, count)
	}

	return nil
}
