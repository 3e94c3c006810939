// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/creatorlens/internal/metrics"
)

// creatorState is the per-creator bookkeeping guarded by Engine.mu.
type creatorState struct {
	inflight int
	failures int
	retryAt  time.Time
	backoff  *backoff.ExponentialBackOff
}

func newSnapshotID() string {
	return uuid.NewString()
}

// regenerate pulls the creator's data, recomputes the snapshot and publishes
// it. On any failure the previous snapshot stays authoritative.
func (e *Engine) regenerate(ctx context.Context, creatorID string, topPostsCount int) (*InsightSnapshot, error) {
	started := time.Now()
	logger := e.requestLogger(ctx, creatorID)

	ctx, cancel := context.WithTimeout(ctx, e.config.RegenerationTimeout)
	defer cancel()

	if err := e.pool.Acquire(ctx, 1); err != nil {
		return nil, e.fail(ctx, creatorID, started, upstreamError(ctx, "acquire worker", err))
	}
	defer e.pool.Release(1)

	metrics.TrackRegeneration(true)
	defer metrics.TrackRegeneration(false)

	records, posts, err := e.pull(ctx, creatorID)
	if err != nil {
		return nil, e.fail(ctx, creatorID, started, err)
	}

	snap := BuildSnapshot(e.analytics, e.newID(), creatorID, records, posts, topPostsCount, e.now())
	if ctx.Err() != nil {
		return nil, e.fail(ctx, creatorID, started, upstreamError(ctx, "build snapshot", ctx.Err()))
	}

	if err := e.snapshots.Put(ctx, snap); err != nil {
		return nil, e.fail(ctx, creatorID, started, upstreamError(ctx, "store snapshot", err))
	}

	current := e.install(snap)
	e.recordSuccess(creatorID)
	metrics.RecordRegeneration("success", time.Since(started))

	logger.Info().
		Str("snapshot_id", snap.ID).
		Int("posts", snap.PostCount).
		Int("recommendations", len(snap.Recommendations)).
		Bool("insufficient_evidence", snap.InsufficientEvidence).
		Dur("duration", time.Since(started)).
		Msg("Insights regenerated")

	if e.publisher != nil {
		if err := e.publisher.PublishSnapshot(ctx, snap); err != nil {
			logger.Warn().Err(err).Str("snapshot_id", snap.ID).Msg("Failed to publish insights event")
		}
	}
	return current, nil
}

// fail records a failed regeneration and returns err.
func (e *Engine) fail(ctx context.Context, creatorID string, started time.Time, err error) error {
	result := "failure"
	if errors.Is(err, ErrRegenerationTimeout) {
		result = "timeout"
	}
	metrics.RecordRegeneration(result, time.Since(started))

	delay, failures := e.recordFailure(creatorID)
	_, hasSnapshot := e.cache.Get(creatorID)

	logger := e.requestLogger(ctx, creatorID)
	logger.Warn().
		Err(err).
		Int("consecutive_failures", failures).
		Dur("retry_in", delay).
		Bool("serving_previous", hasSnapshot).
		Msg("Insight regeneration failed")

	return fmt.Errorf("regenerate insights for %s: %w", creatorID, err)
}

func (e *Engine) track(creatorID string) {
	e.mu.Lock()
	e.stateLocked(creatorID)
	e.mu.Unlock()
}

func (e *Engine) stateLocked(creatorID string) *creatorState {
	st, ok := e.creators[creatorID]
	if !ok {
		st = &creatorState{}
		e.creators[creatorID] = st
	}
	return st
}

func (e *Engine) finish(creatorID string) {
	e.mu.Lock()
	if st := e.stateLocked(creatorID); st.inflight > 0 {
		st.inflight--
	}
	e.mu.Unlock()
}

// backingOff reports whether the creator is inside a backoff window.
func (e *Engine) backingOff(creatorID string, now time.Time) (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.creators[creatorID]
	if !ok || !now.Before(st.retryAt) {
		return time.Time{}, false
	}
	return st.retryAt, true
}

func (e *Engine) recordFailure(creatorID string) (time.Duration, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.stateLocked(creatorID)
	if st.backoff == nil {
		st.backoff = e.newBackoff()
	}
	delay := st.backoff.NextBackOff()
	if delay == backoff.Stop {
		delay = e.config.Backoff.Max
	}
	st.failures++
	st.retryAt = e.now().Add(delay)

	metrics.SetBackoffCreators(e.backoffCountLocked())
	return delay, st.failures
}

func (e *Engine) recordSuccess(creatorID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.stateLocked(creatorID)
	st.failures = 0
	st.retryAt = time.Time{}
	if st.backoff != nil {
		st.backoff.Reset()
	}

	metrics.SetBackoffCreators(e.backoffCountLocked())
}

func (e *Engine) backoffCountLocked() int {
	now := e.now()
	n := 0
	for _, st := range e.creators {
		if now.Before(st.retryAt) {
			n++
		}
	}
	return n
}

func (e *Engine) newBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = e.config.Backoff.Initial
	b.MaxInterval = e.config.Backoff.Max
	b.Multiplier = e.config.Backoff.Multiplier
	b.RandomizationFactor = e.config.Backoff.Jitter
	b.Reset()
	return b
}
