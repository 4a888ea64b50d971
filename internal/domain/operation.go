package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType identifies the kind of balance mutation requested.
type OperationType string

const (
	OperationCredit   OperationType = "credit"
	OperationDebit    OperationType = "debit"
	OperationReserve  OperationType = "reserve"
	OperationRelease  OperationType = "release"
	OperationTransfer OperationType = "transfer"
)

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	switch t {
	case OperationCredit, OperationDebit, OperationReserve, OperationRelease, OperationTransfer:
		return true
	}
	return false
}

// OperationStatus is the lifecycle state of an operation record.
// Normal processing only produces pending -> completed or pending -> failed;
// cancelled is reserved for manual reversal workflows.
type OperationStatus string

const (
	OperationPending   OperationStatus = "pending"
	OperationCompleted OperationStatus = "completed"
	OperationFailed    OperationStatus = "failed"
	OperationCancelled OperationStatus = "cancelled"
)

// Metadata keys used on transfer operation records.
const (
	MetaTransferType  = "transfer_type"
	MetaCounterparty  = "counterparty_account_id"
	MetaCorrelationID = "correlation_id"

	TransferOutbound = "outbound"
	TransferInbound  = "inbound"
)

// Operation is one append-only record of a requested balance mutation.
// A transfer produces two linked operations, one per account, sharing the
// caller reference and a correlation id in metadata.
type Operation struct {
	ID          string
	AccountID   string
	Type        OperationType
	Amount      decimal.Decimal
	Currency    string
	Reference   string
	Description string
	Metadata    map[string]any
	Status      OperationStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}
