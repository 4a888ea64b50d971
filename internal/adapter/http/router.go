package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finvault/balance-ledger/internal/adapter/http/handler"
	"github.com/finvault/balance-ledger/internal/adapter/http/middleware"
	"github.com/finvault/balance-ledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	BalanceHandler     *handler.BalanceHandler
	TransferHandler    *handler.TransferHandler
	HistoryHandler     *handler.HistoryHandler
	SnapshotHandler    *handler.SnapshotHandler
	ConsistencyHandler *handler.ConsistencyHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	IdempotencyTTL     time.Duration
	RateLimiter        *middleware.RateLimiter
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Balances
		r.Route("/balances/{accountID}", func(r chi.Router) {
			r.Post("/", cfg.BalanceHandler.Update)
			r.Get("/", cfg.BalanceHandler.GetAll)
			r.Post("/reserve", cfg.BalanceHandler.Reserve)
			r.Post("/release", cfg.BalanceHandler.Release)
			r.Get("/history", cfg.HistoryHandler.ListByAccount)
			r.Get("/snapshots", cfg.SnapshotHandler.ListByAccount)
			r.Get("/{currency}", cfg.BalanceHandler.Get)
		})

		// Operations
		r.Get("/operations/{id}", cfg.HistoryHandler.Get)

		// Transfers
		r.Post("/transfers", cfg.TransferHandler.Create)

		// Snapshots
		r.Post("/snapshots", cfg.SnapshotHandler.Create)

		// Ledger-wide checks
		r.Get("/ledger/consistency", cfg.ConsistencyHandler.Check)
	})

	return r
}
