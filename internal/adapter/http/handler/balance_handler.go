package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finvault/balance-ledger/internal/adapter/http/dto"
	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
)

// LedgerService defines the behavior needed by BalanceHandler.
type LedgerService interface {
	UpdateBalance(ctx context.Context, input usecase.UpdateBalanceInput) (*domain.Balance, error)
	GetBalance(ctx context.Context, accountID, currency string) (*domain.Balance, error)
	GetAllBalances(ctx context.Context, accountID string) ([]*domain.Balance, error)
}

// BalanceHandler handles balance-related HTTP requests.
type BalanceHandler struct {
	ledgerUC LedgerService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(ledgerUC LedgerService) *BalanceHandler {
	return &BalanceHandler{ledgerUC: ledgerUC}
}

// Update applies a credit, debit, reserve or release operation.
func (h *BalanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	balance, err := h.ledgerUC.UpdateBalance(r.Context(), req.ToUseCaseInput(accountID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(balance))
}

// Reserve moves funds from available to reserved.
func (h *BalanceHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	h.applyReservation(w, r, domain.OperationReserve)
}

// Release moves funds from reserved back to available.
func (h *BalanceHandler) Release(w http.ResponseWriter, r *http.Request) {
	h.applyReservation(w, r, domain.OperationRelease)
}

func (h *BalanceHandler) applyReservation(w http.ResponseWriter, r *http.Request, opType domain.OperationType) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	balance, err := h.ledgerUC.UpdateBalance(r.Context(), usecase.UpdateBalanceInput{
		AccountID:   accountID,
		Currency:    req.Currency,
		Type:        opType,
		Amount:      req.Amount,
		Reference:   req.Reference,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(balance))
}

// Get retrieves one balance by account and currency.
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	currency := chi.URLParam(r, "currency")
	if accountID == "" || currency == "" {
		writeError(w, http.StatusBadRequest, "missing account ID or currency", "")
		return
	}

	balance, err := h.ledgerUC.GetBalance(r.Context(), accountID, currency)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(balance))
}

// GetAll retrieves all balances held by an account.
func (h *BalanceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	balances, err := h.ledgerUC.GetAllBalances(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBalancesResponse{
		AccountID: accountID,
		Balances:  dto.BalancesFromDomain(balances),
	})
}
