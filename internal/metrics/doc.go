// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package metrics provides Prometheus metrics for the insight engine.

All collectors are registered with the default registry through promauto and
exposed on the /metrics endpoint served by the metrics HTTP service:

	curl http://localhost:9464/metrics

# Available Metrics

Insight Metrics:
  - insight_requests_total: Insight lookups by cache state (counter)
    Labels: state (fresh, stale, absent)
  - insight_regenerations_total: Regeneration passes (counter)
    Labels: result (success, failure, timeout)
  - insight_regeneration_duration_seconds: Regeneration latency (histogram)
  - insight_regenerations_in_flight: Running regenerations (gauge)
  - insight_upstream_pulls_total: Metrics store pulls (counter)
  - insight_backoff_creators: Creators currently backing off (gauge)

Prediction Metrics:
  - insight_predictions_total: Predictions by confidence (counter)
    Labels: confidence

Storage Metrics:
  - duckdb_query_duration_seconds: Metrics store query latency (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Metrics store query errors (counter)
    Labels: operation, table
  - snapshot_store_operations_total: Snapshot store operations (counter)
    Labels: backend, operation, result

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Requests by result (counter)
  - circuit_breaker_state_transitions_total: State transitions (counter)

Event Metrics:
  - insight_events_published_total: Insight events published (counter)
    Labels: result
  - performance_events_received_total: Performance-collected events (counter)

Refresh Metrics:
  - insight_refresh_sweeps_total: Background refresh sweeps (counter)
  - insight_refresh_triggered_total: Regenerations started by sweeps (counter)
*/
package metrics
