// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package database

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/config"
	"github.com/tomtom215/creatorlens/internal/insights"
	"github.com/tomtom215/creatorlens/internal/logging"
	"github.com/tomtom215/creatorlens/internal/metrics"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("metrics store circuit breaker open")

// CircuitBreakerStore wraps an insights.MetricsStore with the circuit
// breaker pattern so a failing metrics database is not hammered by every
// regeneration.
//
// The breaker uses real time for its interval and timeout. Tests that need
// an open circuit trip it with failing calls rather than faking the clock.
type CircuitBreakerStore struct {
	store insights.MetricsStore
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string
}

// NewCircuitBreakerStore wraps store. The circuit opens when FailureRatio of
// at least MinRequests requests fail within Interval.
func NewCircuitBreakerStore(store insights.MetricsStore, cfg *config.CircuitBreakerConfig) *CircuitBreakerStore {
	cbName := "metrics-store"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// A caller giving up says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreakerStore{
		store: store,
		cb:    cb,
		name:  cbName,
	}
}

// State returns the current breaker state.
func (s *CircuitBreakerStore) State() gobreaker.State {
	return s.cb.State()
}

func (s *CircuitBreakerStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := s.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	return result, nil
}

// castSlice safely type-casts the circuit breaker result
func castSlice[T any](result interface{}, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.([]T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// ListPerformance reads performance records with circuit breaker protection
func (s *CircuitBreakerStore) ListPerformance(ctx context.Context, creatorID string) ([]analytics.PerformanceRecord, error) {
	return castSlice[analytics.PerformanceRecord](s.execute(func() (interface{}, error) {
		return s.store.ListPerformance(ctx, creatorID)
	}))
}

// ListPosts reads post metadata with circuit breaker protection
func (s *CircuitBreakerStore) ListPosts(ctx context.Context, creatorID string) ([]analytics.PostMetadata, error) {
	return castSlice[analytics.PostMetadata](s.execute(func() (interface{}, error) {
		return s.store.ListPosts(ctx, creatorID)
	}))
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
