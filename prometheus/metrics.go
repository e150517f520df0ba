package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ledger-service/pkg/config"
)

var (
	// Authentication metrics
	LoginCounter      prometheus.Counter
	AuthErrorsCounter *prometheus.CounterVec

	// Company scope metrics
	CompanyScopeMissingCounter prometheus.Counter

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Ledger account metrics
	LedgerOperationsCounter *prometheus.CounterVec
	SuppliersPerCompany     *prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	LoginCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	AuthErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors by reason",
		},
		[]string{"reason"},
	)

	CompanyScopeMissingCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_company_scope_missing_total",
			Help: "Total number of requests without a company scope",
		},
	)

	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	LedgerOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of ledger account operations",
		},
		[]string{"operation"},
	)

	SuppliersPerCompany = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_suppliers_per_company",
			Help: "Number of ledger accounts per company",
		},
		[]string{"company_id"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordLedgerOperation increments the counter for ledger account operations
func RecordLedgerOperation(operation string) {
	LedgerOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAuthError increments the auth error counter for a failure reason
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// UpdateSuppliersPerCompany updates the per-company account gauge
func UpdateSuppliersPerCompany(companyID int, count int) {
	SuppliersPerCompany.WithLabelValues(strconv.Itoa(companyID)).Set(float64(count))
}
