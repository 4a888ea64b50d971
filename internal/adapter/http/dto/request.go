package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
)

// UpdateBalanceRequest represents a request to apply a balance operation.
type UpdateBalanceRequest struct {
	Currency    string          `json:"currency"`
	Operation   string          `json:"operation"` // credit, debit, reserve, release
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	Description string          `json:"description,omitempty"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateBalanceRequest) ToUseCaseInput(accountID string) usecase.UpdateBalanceInput {
	return usecase.UpdateBalanceInput{
		AccountID:   accountID,
		Currency:    r.Currency,
		Type:        domain.OperationType(r.Operation),
		Amount:      r.Amount,
		Reference:   r.Reference,
		Description: r.Description,
		Metadata:    r.Metadata,
	}
}

// ReserveRequest represents a request to reserve or release funds.
type ReserveRequest struct {
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	Description string          `json:"description,omitempty"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

// TransferRequest represents a request to move funds between accounts.
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description,omitempty"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Currency:      r.Currency,
		Amount:        r.Amount,
		Reference:     r.Reference,
		Description:   r.Description,
		Metadata:      r.Metadata,
	}
}

// SnapshotRequest represents a request to capture daily snapshots.
type SnapshotRequest struct {
	AccountID string `json:"account_id"`
	Date      string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}
