package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/finvault/balance-ledger/internal/adapter/http/dto"
	"github.com/finvault/balance-ledger/internal/usecase"
)

// ConsistencyService defines the behavior needed by ConsistencyHandler.
type ConsistencyService interface {
	CheckConsistency(ctx context.Context) error
}

// ConsistencyHandler exposes the ledger-wide invariant check.
type ConsistencyHandler struct {
	consistencyUC ConsistencyService
}

// NewConsistencyHandler creates a new ConsistencyHandler.
func NewConsistencyHandler(consistencyUC ConsistencyService) *ConsistencyHandler {
	return &ConsistencyHandler{consistencyUC: consistencyUC}
}

// Check verifies every balance row satisfies the accounting invariants.
func (h *ConsistencyHandler) Check(w http.ResponseWriter, r *http.Request) {
	err := h.consistencyUC.CheckConsistency(r.Context())
	if err == nil {
		writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: true})
		return
	}

	if errors.Is(err, usecase.ErrInconsistentLedger) {
		writeJSON(w, http.StatusConflict, dto.ConsistencyResponse{
			Consistent: false,
			Detail:     err.Error(),
		})
		return
	}

	writeError(w, http.StatusInternalServerError, "consistency check failed", err.Error())
}
