// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package database

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/config"
)

type flakyStore struct {
	calls atomic.Int32
	err   error
}

func (s *flakyStore) ListPerformance(ctx context.Context, creatorID string) ([]analytics.PerformanceRecord, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []analytics.PerformanceRecord{{PostID: "p1", CreatorID: creatorID}}, nil
}

func (s *flakyStore) ListPosts(ctx context.Context, creatorID string) ([]analytics.PostMetadata, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []analytics.PostMetadata{}, nil
}

func breakerConfig() *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		Enabled:      true,
		MaxRequests:  1,
		Timeout:      time.Minute,
		MinRequests:  3,
		FailureRatio: 0.5,
	}
}

func TestCircuitBreakerStore_PassesThrough(t *testing.T) {
	t.Parallel()

	store := NewCircuitBreakerStore(&flakyStore{}, breakerConfig())

	records, err := store.ListPerformance(context.Background(), "creator-1")
	if err != nil {
		t.Fatalf("ListPerformance() error = %v", err)
	}
	if len(records) != 1 || records[0].CreatorID != "creator-1" {
		t.Errorf("records = %+v", records)
	}

	posts, err := store.ListPosts(context.Background(), "creator-1")
	if err != nil || posts == nil {
		t.Errorf("ListPosts() = %v, %v", posts, err)
	}
}

func TestCircuitBreakerStore_OpensAfterFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("database is locked")
	inner := &flakyStore{err: boom}
	store := NewCircuitBreakerStore(inner, breakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.ListPerformance(ctx, "creator-1"); !errors.Is(err, boom) {
			t.Fatalf("call %d error = %v, want %v", i, err, boom)
		}
	}
	if store.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", store.State())
	}

	_, err := store.ListPosts(ctx, "creator-1")
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("error = %v, want ErrCircuitOpen", err)
	}
	if inner.calls.Load() != 3 {
		t.Errorf("inner store called %d times, want 3", inner.calls.Load())
	}
}

func TestCircuitBreakerStore_CancellationDoesNotTrip(t *testing.T) {
	t.Parallel()

	inner := &flakyStore{err: context.Canceled}
	store := NewCircuitBreakerStore(inner, breakerConfig())

	for i := 0; i < 5; i++ {
		_, _ = store.ListPerformance(context.Background(), "creator-1")
	}
	if store.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", store.State())
	}
}
