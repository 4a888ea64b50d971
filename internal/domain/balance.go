package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance represents the funds held for one (account, currency) pair.
// Total is always Available + Reserved; it is never mutated independently.
type Balance struct {
	AccountID   string
	Currency    string
	Available   decimal.Decimal
	Reserved    decimal.Decimal
	Total       decimal.Decimal
	LastUpdated time.Time
	CreatedAt   time.Time
}

// NewBalance returns a zeroed balance for an (account, currency) pair.
func NewBalance(accountID, currency string, now time.Time) *Balance {
	return &Balance{
		AccountID:   accountID,
		Currency:    currency,
		Available:   decimal.Zero,
		Reserved:    decimal.Zero,
		Total:       decimal.Zero,
		LastUpdated: now,
		CreatedAt:   now,
	}
}

// ValidateDebit checks whether amount can be taken from available funds.
func (b *Balance) ValidateDebit(amount decimal.Decimal) error {
	if b.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateRelease checks whether amount can be moved out of reserved funds.
func (b *Balance) ValidateRelease(amount decimal.Decimal) error {
	if b.Reserved.LessThan(amount) {
		return ErrInsufficientReserve
	}
	return nil
}

// Validate decides whether op is admissible against the current state.
// It is a pure decision: no fields are mutated.
func (b *Balance) Validate(op OperationType, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	switch op {
	case OperationCredit:
		return nil
	case OperationDebit, OperationReserve:
		return b.ValidateDebit(amount)
	case OperationRelease:
		return b.ValidateRelease(amount)
	default:
		return ErrInvalidOperationType
	}
}

// Apply mutates the balance according to op and recomputes Total.
// Callers must have called Validate first; Apply repeats the check to
// guarantee the non-negativity invariants hold in every reachable state.
func (b *Balance) Apply(op OperationType, amount decimal.Decimal, now time.Time) error {
	if err := b.Validate(op, amount); err != nil {
		return err
	}

	switch op {
	case OperationCredit:
		b.Available = b.Available.Add(amount)
	case OperationDebit:
		b.Available = b.Available.Sub(amount)
	case OperationReserve:
		b.Available = b.Available.Sub(amount)
		b.Reserved = b.Reserved.Add(amount)
	case OperationRelease:
		b.Available = b.Available.Add(amount)
		b.Reserved = b.Reserved.Sub(amount)
	}

	b.Total = b.Available.Add(b.Reserved)
	b.LastUpdated = now

	return nil
}

// IsConsistent reports whether the accounting invariants hold.
func (b *Balance) IsConsistent() bool {
	if b.Available.IsNegative() || b.Reserved.IsNegative() {
		return false
	}
	return b.Total.Equal(b.Available.Add(b.Reserved))
}
