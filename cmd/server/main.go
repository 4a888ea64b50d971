package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	httpAdapter "github.com/finvault/balance-ledger/internal/adapter/http"
	"github.com/finvault/balance-ledger/internal/adapter/http/handler"
	"github.com/finvault/balance-ledger/internal/adapter/http/middleware"
	postgresRepo "github.com/finvault/balance-ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/finvault/balance-ledger/internal/adapter/repository/redis"
	"github.com/finvault/balance-ledger/internal/infrastructure/config"
	"github.com/finvault/balance-ledger/internal/infrastructure/logger"
	"github.com/finvault/balance-ledger/internal/infrastructure/metrics"
	"github.com/finvault/balance-ledger/internal/infrastructure/postgres"
	"github.com/finvault/balance-ledger/internal/infrastructure/redis"
	"github.com/finvault/balance-ledger/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// PostgreSQL
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	operationRepo := postgresRepo.NewOperationRepository(pool)
	snapshotRepo := postgresRepo.NewSnapshotRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()

	retrier := postgresRepo.NewRetrier(log)
	retrier.OnRetry(m.DBRetries.Inc)

	var cache usecase.Cache
	if cfg.BalanceCacheEnabled {
		cache = redisRepo.NewCache(redisClient)
	}
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Use cases
	ledgerUC := usecase.NewLedgerUseCase(txManager, balanceRepo, operationRepo, retrier, cache, idGen, m)
	transferUC := usecase.NewTransferUseCase(txManager, balanceRepo, operationRepo, retrier, cache, idGen, m)
	historyUC := usecase.NewHistoryUseCase(operationRepo)
	snapshotUC := usecase.NewSnapshotUseCase(txManager, balanceRepo, snapshotRepo, idGen, m)
	consistencyUC := usecase.NewConsistencyUseCase(balanceRepo)

	// HTTP layer
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BalanceHandler:     handler.NewBalanceHandler(ledgerUC),
		TransferHandler:    handler.NewTransferHandler(transferUC),
		HistoryHandler:     handler.NewHistoryHandler(historyUC),
		SnapshotHandler:    handler.NewSnapshotHandler(snapshotUC),
		ConsistencyHandler: handler.NewConsistencyHandler(consistencyUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:             log,
	})

	server := &http.Server{
		Addr:         listenAddr(cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// listenAddr accepts either a bare port ("8080") or a full host:port
// ("0.0.0.0:8080") and returns a valid listen address.
func listenAddr(port string) string {
	if _, _, err := net.SplitHostPort(port); err == nil {
		return port
	}
	return ":" + port
}
