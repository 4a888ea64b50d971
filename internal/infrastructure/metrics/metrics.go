package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger operation metrics
	OperationsProcessed *prometheus.CounterVec
	OperationDuration   prometheus.Histogram
	OperationAmount     prometheus.Histogram
	OperationErrors     *prometheus.CounterVec

	// Transfer metrics
	TransfersCreated prometheus.Counter
	TransferDuration prometheus.Histogram
	TransferErrors   *prometheus.CounterVec

	// Snapshot metrics
	SnapshotsUpserted prometheus.Counter
	SnapshotDuration  prometheus.Histogram

	// Balance metrics
	BalancesCreated prometheus.Counter
	BalanceTotal    *prometheus.GaugeVec

	// Database metrics
	DBRetries prometheus.Counter
	DBErrors  *prometheus.CounterVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		OperationsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total ledger operations by type and status",
			},
			[]string{"type", "status"},
		),
		OperationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Duration of ledger operations",
			Buckets: prometheus.DefBuckets,
		}),
		OperationAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_operation_amount",
			Help:    "Operation amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operation_errors_total",
				Help: "Total ledger operation errors by type",
			},
			[]string{"error_type"},
		),

		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transfers_created_total",
			Help: "Total number of transfers created",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),

		SnapshotsUpserted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_snapshots_upserted_total",
			Help: "Total number of balance snapshots upserted",
		}),
		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_snapshot_duration_seconds",
			Help:    "Duration of snapshot runs",
			Buckets: prometheus.DefBuckets,
		}),

		BalancesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_balances_created_total",
			Help: "Total number of balance rows lazily created",
		}),
		BalanceTotal: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_balance_total",
				Help: "Current total balance per account and currency",
			},
			[]string{"account_id", "currency"},
		),

		DBRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_db_retries_total",
			Help: "Total transaction retries on serialization conflicts",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_cache_hits_total",
			Help: "Total balance cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_cache_misses_total",
			Help: "Total balance cache misses",
		}),
	}
}
