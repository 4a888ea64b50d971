package domain

import "errors"

var (
	// Balance errors
	ErrInsufficientFunds   = errors.New("insufficient available balance")
	ErrInsufficientReserve = errors.New("insufficient reserved balance")
	ErrBalanceNotFound     = errors.New("balance not found")

	// Operation errors
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidOperationType = errors.New("invalid operation type")
	ErrOperationNotFound    = errors.New("operation not found")
	ErrDuplicateReference   = errors.New("operation reference already used")

	// Transfer errors
	ErrSelfTransfer     = errors.New("cannot transfer to same account")
	ErrCurrencyMismatch = errors.New("transfer currency mismatch")
)
