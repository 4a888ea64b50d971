package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finvault/balance-ledger/internal/adapter/http/dto"
	"github.com/finvault/balance-ledger/internal/domain"
)

// SnapshotService defines the behavior needed by SnapshotHandler.
type SnapshotService interface {
	CreateDailySnapshot(ctx context.Context, accountID string, date time.Time) ([]*domain.Snapshot, error)
	GetSnapshots(ctx context.Context, accountID string, date time.Time) ([]*domain.Snapshot, error)
}

// SnapshotHandler handles daily snapshot HTTP requests.
type SnapshotHandler struct {
	snapshotUC SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotUC SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotUC: snapshotUC}
}

// Create captures a snapshot of every balance the account holds.
func (h *SnapshotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	snapshots, err := h.snapshotUC.CreateDailySnapshot(r.Context(), req.AccountID, date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SnapshotsFromDomain(snapshots))
}

// ListByAccount lists an account's snapshots for a given day.
func (h *SnapshotHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	date := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	snapshots, err := h.snapshotUC.GetSnapshots(r.Context(), accountID, date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list snapshots", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SnapshotsFromDomain(snapshots))
}
