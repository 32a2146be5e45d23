// Package metrics provides Prometheus metrics collection for the pack planner.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Computation outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusCached  = "cached"
	StatusShared  = "shared"
	StatusError   = "error"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PackComputationsTotal counts plan computations by outcome.
	PackComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pack_computations_total",
			Help: "Total number of pack plan computations",
		},
		[]string{"status"},
	)

	// PackComputationDuration tracks optimizer latency, cache hits excluded.
	PackComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pack_computation_duration_seconds",
			Help:    "Pack plan computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// PackSizesRegistered is the number of sizes in the registry.
	PackSizesRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pack_sizes_registered",
			Help: "Number of registered pack sizes",
		},
	)

	// RegistryMutationsTotal counts add/remove attempts by result.
	RegistryMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pack_registry_mutations_total",
			Help: "Total number of pack size registry mutations",
		},
		[]string{"action", "result"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			// unmatched routes share one label to bound cardinality
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPackComputation records one computation. duration is ignored for cached
// and shared results.
func RecordPackComputation(duration time.Duration, status string) {
	if status == StatusSuccess || status == StatusError {
		PackComputationDuration.Observe(duration.Seconds())
	}
	PackComputationsTotal.WithLabelValues(status).Inc()
}

// RecordRegistryMutation records an add or remove and the resulting registry size.
func RecordRegistryMutation(action, result string, size int) {
	RegistryMutationsTotal.WithLabelValues(action, result).Inc()
	PackSizesRegistered.Set(float64(size))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes a breaker state. state follows circuitbreaker.State.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
