// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Insight Metrics
	InsightRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_requests_total",
			Help: "Total number of insight lookups by cache state",
		},
		[]string{"state"}, // "fresh", "stale", "absent"
	)

	InsightRegenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_regenerations_total",
			Help: "Total number of insight regeneration passes",
		},
		[]string{"result"}, // "success", "failure", "timeout"
	)

	InsightRegenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insight_regeneration_duration_seconds",
			Help:    "Duration of insight regeneration passes in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	InsightRegenerationsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "insight_regenerations_in_flight",
			Help: "Number of insight regenerations currently running",
		},
	)

	InsightUpstreamPulls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insight_upstream_pulls_total",
			Help: "Total number of raw record pulls from the metrics store",
		},
	)

	InsightBackoffCreators = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "insight_backoff_creators",
			Help: "Number of creators whose regeneration is backing off after failures",
		},
	)

	// Prediction Metrics
	InsightPredictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_predictions_total",
			Help: "Total number of performance predictions by confidence",
		},
		[]string{"confidence"},
	)

	// Metrics Store Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Snapshot Store Metrics
	SnapshotStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_store_operations_total",
			Help: "Total number of snapshot store operations",
		},
		[]string{"backend", "operation", "result"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Metrics
	InsightEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_events_published_total",
			Help: "Total number of insight-generated events published",
		},
		[]string{"result"},
	)

	PerformanceEventsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "performance_events_received_total",
			Help: "Total number of performance-collected events received",
		},
	)

	// Refresh Metrics
	// HTTP Metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	RefreshSweeps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insight_refresh_sweeps_total",
			Help: "Total number of background refresh sweeps",
		},
	)

	RefreshTriggered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insight_refresh_triggered_total",
			Help: "Total number of regenerations started by refresh sweeps",
		},
	)
)

// RecordInsightRequest records an insight lookup served from the given state
func RecordInsightRequest(state string) {
	InsightRequests.WithLabelValues(state).Inc()
}

// RecordRegeneration records the outcome and duration of a regeneration pass
func RecordRegeneration(result string, duration time.Duration) {
	InsightRegenerations.WithLabelValues(result).Inc()
	InsightRegenerationDuration.Observe(duration.Seconds())
}

// TrackRegeneration tracks running regenerations
func TrackRegeneration(inc bool) {
	if inc {
		InsightRegenerationsInFlight.Inc()
	} else {
		InsightRegenerationsInFlight.Dec()
	}
}

// RecordUpstreamPull records a pull of raw records from the metrics store
func RecordUpstreamPull() {
	InsightUpstreamPulls.Inc()
}

// SetBackoffCreators sets the number of creators in backoff
func SetBackoffCreators(n int) {
	InsightBackoffCreators.Set(float64(n))
}

// RecordPrediction records a prediction by confidence level
func RecordPrediction(confidence string) {
	InsightPredictions.WithLabelValues(confidence).Inc()
}

// RecordDBQuery records a metrics store query
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordSnapshotOperation records a snapshot store operation
func RecordSnapshotOperation(backend, operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	SnapshotStoreOperations.WithLabelValues(backend, operation, result).Inc()
}

// RecordInsightEvent records an insight-generated event publish attempt
func RecordInsightEvent(err error) {
	if err != nil {
		InsightEventsPublished.WithLabelValues("error").Inc()
		return
	}
	InsightEventsPublished.WithLabelValues("success").Inc()
}

// RecordPerformanceEvent records a received performance-collected event
func RecordPerformanceEvent() {
	PerformanceEventsReceived.Inc()
}

// RecordRefreshSweep records a refresh sweep and how many regenerations it started
func RecordRefreshSweep(triggered int) {
	RefreshSweeps.Inc()
	RefreshTriggered.Add(float64(triggered))
}

// RecordHTTPRequest records a served HTTP request
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest tracks HTTP requests in progress
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}
