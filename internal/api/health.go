// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package api

import (
	"context"
	"net/http"
	"time"
)

// Pinger is a dependency whose connectivity decides readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CircuitState reports the metrics store breaker state ("closed", "open", ...).
type CircuitState func() string

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db        Pinger
	circuit   CircuitState
	startTime time.Time
	timeout   time.Duration
}

// NewHealthHandler creates a health handler. circuit may be nil when the
// breaker is disabled.
func NewHealthHandler(db Pinger, circuit CircuitState) *HealthHandler {
	return &HealthHandler{
		db:        db,
		circuit:   circuit,
		startTime: time.Now(),
		timeout:   2 * time.Second,
	}
}

// Live returns 200 OK if the process is alive, regardless of dependencies
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// Ready returns 200 OK only if the metrics database answers and its circuit
// breaker is not open. Otherwise 503.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	dbConnected := h.db != nil && h.db.Ping(ctx) == nil

	circuit := "disabled"
	if h.circuit != nil {
		circuit = h.circuit()
	}
	ready := dbConnected && circuit != "open"

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"database_connected": dbConnected,
			"circuit_breaker":    circuit,
			"ready_to_serve":     ready,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}
