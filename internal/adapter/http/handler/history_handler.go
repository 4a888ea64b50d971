package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finvault/balance-ledger/internal/adapter/http/dto"
	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
)

// HistoryService defines the behavior needed by HistoryHandler.
type HistoryService interface {
	GetBalanceHistory(ctx context.Context, input usecase.GetBalanceHistoryInput) ([]*domain.Operation, error)
	GetOperation(ctx context.Context, id string) (*domain.Operation, error)
}

// HistoryHandler serves operation history queries.
type HistoryHandler struct {
	historyUC HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyUC HistoryService) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// ListByAccount lists an account's operations, newest first.
func (h *HistoryHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 0)
	offset := parseIntQuery(r, "offset", 0)

	ops, err := h.historyUC.GetBalanceHistory(r.Context(), usecase.GetBalanceHistoryInput{
		AccountID: accountID,
		Currency:  r.URL.Query().Get("currency"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list operations", err.Error())
		return
	}

	if limit <= 0 {
		limit = usecase.DefaultHistoryLimit
	}
	if limit > usecase.MaxHistoryLimit {
		limit = usecase.MaxHistoryLimit
	}

	writeJSON(w, http.StatusOK, dto.ListOperationsResponse{
		AccountID:  accountID,
		Operations: dto.OperationsFromDomain(ops),
		Limit:      limit,
		Offset:     max(offset, 0),
	})
}

// Get retrieves a single operation.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing operation ID", "")
		return
	}

	op, err := h.historyUC.GetOperation(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get operation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OperationFromDomain(op))
}
