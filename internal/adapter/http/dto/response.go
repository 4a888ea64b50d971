package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
)

// BalanceResponse represents a balance in API responses.
type BalanceResponse struct {
	AccountID   string          `json:"account_id"`
	Currency    string          `json:"currency"`
	Available   decimal.Decimal `json:"available"`
	Reserved    decimal.Decimal `json:"reserved"`
	Total       decimal.Decimal `json:"total"`
	LastUpdated time.Time       `json:"last_updated"`
}

// BalanceFromDomain converts a domain balance to a response.
func BalanceFromDomain(b *domain.Balance) *BalanceResponse {
	return &BalanceResponse{
		AccountID:   b.AccountID,
		Currency:    b.Currency,
		Available:   b.Available,
		Reserved:    b.Reserved,
		Total:       b.Total,
		LastUpdated: b.LastUpdated,
	}
}

// BalancesFromDomain converts domain balances to responses.
func BalancesFromDomain(balances []*domain.Balance) []*BalanceResponse {
	result := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		result[i] = BalanceFromDomain(b)
	}
	return result
}

// ListBalancesResponse wraps an account's balances.
type ListBalancesResponse struct {
	AccountID string             `json:"account_id"`
	Balances  []*BalanceResponse `json:"balances"`
}

// OperationResponse represents an operation in API responses.
type OperationResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Reference   string          `json:"reference"`
	Description string          `json:"description,omitempty"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}

// OperationFromDomain converts a domain operation to a response.
func OperationFromDomain(op *domain.Operation) *OperationResponse {
	return &OperationResponse{
		ID:          op.ID,
		AccountID:   op.AccountID,
		Type:        string(op.Type),
		Amount:      op.Amount,
		Currency:    op.Currency,
		Reference:   op.Reference,
		Description: op.Description,
		Metadata:    op.Metadata,
		Status:      string(op.Status),
		CreatedAt:   op.CreatedAt,
		ProcessedAt: op.ProcessedAt,
	}
}

// OperationsFromDomain converts domain operations to responses.
func OperationsFromDomain(ops []*domain.Operation) []*OperationResponse {
	result := make([]*OperationResponse, len(ops))
	for i, op := range ops {
		result[i] = OperationFromDomain(op)
	}
	return result
}

// ListOperationsResponse wraps an account's operation history.
type ListOperationsResponse struct {
	AccountID  string               `json:"account_id"`
	Operations []*OperationResponse `json:"operations"`
	Limit      int                  `json:"limit"`
	Offset     int                  `json:"offset"`
}

// TransferResponse represents the outcome of a transfer.
type TransferResponse struct {
	OperationID string           `json:"operation_id"`
	FromBalance *BalanceResponse `json:"from_balance"`
	ToBalance   *BalanceResponse `json:"to_balance"`
}

// SnapshotResponse represents a daily snapshot in API responses.
type SnapshotResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Currency  string          `json:"currency"`
	Date      string          `json:"date"`
	Available decimal.Decimal `json:"available"`
	Reserved  decimal.Decimal `json:"reserved"`
	Total     decimal.Decimal `json:"total"`
}

// SnapshotFromDomain converts a domain snapshot to a response.
func SnapshotFromDomain(s *domain.Snapshot) *SnapshotResponse {
	return &SnapshotResponse{
		ID:        s.ID,
		AccountID: s.AccountID,
		Currency:  s.Currency,
		Date:      s.Date.Format("2006-01-02"),
		Available: s.Available,
		Reserved:  s.Reserved,
		Total:     s.Total,
	}
}

// SnapshotsFromDomain converts domain snapshots to responses.
func SnapshotsFromDomain(snapshots []*domain.Snapshot) []*SnapshotResponse {
	result := make([]*SnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		result[i] = SnapshotFromDomain(s)
	}
	return result
}

// ConsistencyResponse reports the outcome of a ledger consistency check.
type ConsistencyResponse struct {
	Consistent bool   `json:"consistent"`
	Detail     string `json:"detail,omitempty"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
