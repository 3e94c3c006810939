// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package insights

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/cache"
	"github.com/tomtom215/creatorlens/internal/logging"
	"github.com/tomtom215/creatorlens/internal/metrics"
	"github.com/tomtom215/creatorlens/internal/validation"
)

// Engine serves creator insights with stale-while-revalidate caching.
//
// At most one regeneration runs per creator at a time. Concurrent readers of
// an absent creator join that single computation. Stale snapshots are served
// immediately while a background refresh runs.
type Engine struct {
	config    *Config
	analytics *analytics.Config
	logger    zerolog.Logger

	store     MetricsStore
	snapshots SnapshotStore
	publisher SnapshotPublisher

	cache  cache.Cacher[*InsightSnapshot]
	closer func()

	flight singleflight.Group
	pool   *semaphore.Weighted

	mu       sync.Mutex
	creators map[string]*creatorState

	now   func() time.Time
	newID func() string

	wg sync.WaitGroup
}

// Option configures an Engine.
type Option func(*Engine)

// WithPublisher sets the publisher notified after each successful regeneration.
func WithPublisher(p SnapshotPublisher) Option {
	return func(e *Engine) { e.publisher = p }
}

// WithClock overrides the clock used for freshness and backoff.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides snapshot ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// GenerateOptions tunes a forced regeneration.
type GenerateOptions struct {
	// TopPostsCount overrides the number of top posts used for pattern
	// detection. Zero uses the configured default.
	TopPostsCount int `json:"top_posts_count" validate:"gte=0"`
}

// NewEngine creates an insight engine.
func NewEngine(cfg *Config, store MetricsStore, snapshots SnapshotStore, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid insights config: %w", err)
	}
	if store == nil || snapshots == nil {
		return nil, errors.New("metrics store and snapshot store are required")
	}

	memory := cache.New[*InsightSnapshot](cache.Config{
		TTL:             cfg.CacheRetention,
		Capacity:        cfg.CacheCapacity,
		CleanupInterval: time.Minute,
	})

	e := &Engine{
		config:    cfg,
		analytics: cfg.Analytics,
		logger:    logger.With().Str("component", "insights").Logger(),
		store:     store,
		snapshots: snapshots,
		cache:     memory,
		closer:    memory.Close,
		pool:      semaphore.NewWeighted(cfg.MaxConcurrentRegenerations),
		creators:  make(map[string]*creatorState),
		now:       time.Now,
		newID:     newSnapshotID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// GetInsights returns the creator's insights.
//
// A fresh snapshot is returned directly. A stale snapshot is returned
// immediately and a background refresh is triggered. With no snapshot the
// call blocks until one is generated.
func (e *Engine) GetInsights(ctx context.Context, creatorID string) (*InsightSnapshot, error) {
	if err := validateCreatorID(creatorID); err != nil {
		return nil, err
	}
	e.track(creatorID)

	snap := e.lookup(ctx, creatorID)
	now := e.now()

	switch {
	case snap == nil:
		metrics.RecordInsightRequest(StateAbsent.String())
		if retryAt, ok := e.backingOff(creatorID, now); ok {
			return nil, fmt.Errorf("%w: creator %s is backing off until %s",
				ErrUpstreamUnavailable, creatorID, retryAt.UTC().Format(time.RFC3339))
		}
		return e.await(ctx, creatorID, e.start(ctx, creatorID, 0))

	case snap.FreshAt(now, e.config.TTL):
		metrics.RecordInsightRequest(StateFresh.String())
		return snap, nil

	default:
		metrics.RecordInsightRequest(StateStale.String())
		e.Refresh(ctx, creatorID)
		return snap, nil
	}
}

// GenerateInsights forces a synchronous regeneration, ignoring freshness and
// backoff. A regeneration already in flight for the creator is joined.
func (e *Engine) GenerateInsights(ctx context.Context, creatorID string, opts GenerateOptions) (*InsightSnapshot, error) {
	if err := validateCreatorID(creatorID); err != nil {
		return nil, err
	}
	if verr := validation.ValidateStruct(&opts); verr != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, verr.Error())
	}
	e.track(creatorID)
	return e.await(ctx, creatorID, e.start(ctx, creatorID, opts.TopPostsCount))
}

// Refresh starts a background regeneration unless one is already running or
// the creator is backing off. It reports whether a regeneration was started.
func (e *Engine) Refresh(ctx context.Context, creatorID string) bool {
	if validateCreatorID(creatorID) != nil {
		return false
	}

	e.mu.Lock()
	st := e.stateLocked(creatorID)
	if st.inflight > 0 || e.now().Before(st.retryAt) {
		e.mu.Unlock()
		return false
	}
	st.inflight++
	e.mu.Unlock()

	e.launch(ctx, creatorID, 0)
	return true
}

// History returns up to limit stored snapshots, newest first.
func (e *Engine) History(ctx context.Context, creatorID string, limit int) ([]*InsightSnapshot, error) {
	if err := validateCreatorID(creatorID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidRequest)
	}
	history, err := e.snapshots.History(ctx, creatorID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot history: %w", ErrUpstreamUnavailable, err)
	}
	return history, nil
}

// State reports the in-memory cache state of a creator.
func (e *Engine) State(creatorID string) State {
	e.mu.Lock()
	st, ok := e.creators[creatorID]
	regenerating := ok && st.inflight > 0
	e.mu.Unlock()

	if regenerating {
		return StateRegenerating
	}
	snap, found := e.cache.Get(creatorID)
	if !found {
		return StateAbsent
	}
	if snap.FreshAt(e.now(), e.config.TTL) {
		return StateFresh
	}
	return StateStale
}

// StaleCreators returns, in sorted order, the known creators whose snapshot
// is stale and who are neither regenerating nor backing off.
func (e *Engine) StaleCreators(ctx context.Context) []string {
	now := e.now()

	e.mu.Lock()
	candidates := make([]string, 0, len(e.creators))
	for id, st := range e.creators {
		if st.inflight > 0 || now.Before(st.retryAt) {
			continue
		}
		candidates = append(candidates, id)
	}
	e.mu.Unlock()

	stale := candidates[:0]
	for _, id := range candidates {
		if snap := e.lookup(ctx, id); snap != nil && !snap.FreshAt(now, e.config.TTL) {
			stale = append(stale, id)
		}
	}
	sort.Strings(stale)
	return stale
}

// RefreshStale starts background regenerations for every stale creator and
// returns how many were started.
func (e *Engine) RefreshStale(ctx context.Context) int {
	started := 0
	for _, id := range e.StaleCreators(ctx) {
		if e.Refresh(ctx, id) {
			started++
		}
	}
	return started
}

// PredictPerformance estimates the performance of a hypothetical post from
// the creator's history.
func (e *Engine) PredictPerformance(ctx context.Context, req analytics.PredictionRequest) (*analytics.PredictionResult, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, verr.Error())
	}

	records, posts, err := e.pullBounded(ctx, req.CreatorID)
	if err != nil {
		return nil, err
	}

	result := e.analytics.Predict(req, e.analytics.ScorePosts(records, posts))
	metrics.RecordPrediction(string(result.Confidence))
	return &result, nil
}

type comparisonRequest struct {
	CreatorID string    `json:"creator_id" validate:"identifier"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end" validate:"gtefield=Start"`
}

// CompareContentTypes compares content formats over [start, end].
func (e *Engine) CompareContentTypes(ctx context.Context, creatorID string, start, end time.Time) (*analytics.ContentComparisonResult, error) {
	req := comparisonRequest{CreatorID: creatorID, Start: start, End: end}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, verr.Error())
	}

	records, posts, err := e.pullBounded(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	result := e.analytics.CompareContentTypes(creatorID, records, posts, start, end)
	return &result, nil
}

// Wait blocks until all in-flight regenerations have finished.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// Close waits for in-flight regenerations and releases the memory cache.
func (e *Engine) Close() {
	e.wg.Wait()
	if e.closer != nil {
		e.closer()
	}
}

// lookup returns the creator's snapshot from memory, falling back to the
// snapshot store. Store failures are logged and treated as absent.
func (e *Engine) lookup(ctx context.Context, creatorID string) *InsightSnapshot {
	if snap, ok := e.cache.Get(creatorID); ok {
		return snap
	}

	snap, err := e.snapshots.GetLatest(ctx, creatorID)
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			logger := e.requestLogger(ctx, creatorID)
			logger.Warn().Err(err).Msg("Snapshot store lookup failed")
		}
		return nil
	}
	return e.install(snap)
}

// install places snap in memory unless a newer snapshot is already there,
// and returns whichever snapshot is current.
func (e *Engine) install(snap *InsightSnapshot) *InsightSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if current, ok := e.cache.Get(snap.CreatorID); ok && current.GeneratedAt.After(snap.GeneratedAt) {
		return current
	}
	e.cache.Set(snap.CreatorID, snap)
	return snap
}

// start launches, or joins, the creator's regeneration. The work is detached
// from the caller's cancellation and bounded by the regeneration timeout.
func (e *Engine) start(ctx context.Context, creatorID string, topPostsCount int) <-chan singleflight.Result {
	e.mu.Lock()
	e.stateLocked(creatorID).inflight++
	e.mu.Unlock()

	return e.launch(ctx, creatorID, topPostsCount)
}

// launch runs the flight for a creator whose inflight count the caller has
// already raised. The count drops once the flight result is delivered.
func (e *Engine) launch(ctx context.Context, creatorID string, topPostsCount int) <-chan singleflight.Result {
	out := make(chan singleflight.Result, 1)
	workCtx := context.WithoutCancel(ctx)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		res := <-e.flight.DoChan(creatorID, func() (interface{}, error) {
			return e.regenerate(workCtx, creatorID, topPostsCount)
		})
		e.finish(creatorID)
		out <- res
	}()
	return out
}

// await waits for a flight result for at most the regeneration timeout. A
// pass that overruns the ceiling is left to finish on its own; its context
// has expired by then, so it records a failure instead of a snapshot.
func (e *Engine) await(ctx context.Context, creatorID string, ch <-chan singleflight.Result) (*InsightSnapshot, error) {
	timer := time.NewTimer(e.config.RegenerationTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*InsightSnapshot), nil
	case <-timer.C:
		logger := e.requestLogger(ctx, creatorID)
		logger.Warn().Dur("timeout", e.config.RegenerationTimeout).Msg("Abandoned wait for insight regeneration")
		return nil, fmt.Errorf("%w: creator %s: waited %s", ErrRegenerationTimeout, creatorID, e.config.RegenerationTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// pullBounded reads a creator's data for request-scoped computations,
// sharing the worker pool with regenerations.
func (e *Engine) pullBounded(ctx context.Context, creatorID string) ([]analytics.PerformanceRecord, []analytics.PostMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, e.config.RegenerationTimeout)
	defer cancel()

	if err := e.pool.Acquire(ctx, 1); err != nil {
		return nil, nil, upstreamError(ctx, "acquire worker", err)
	}
	defer e.pool.Release(1)

	return e.pull(ctx, creatorID)
}

func (e *Engine) pull(ctx context.Context, creatorID string) ([]analytics.PerformanceRecord, []analytics.PostMetadata, error) {
	metrics.RecordUpstreamPull()

	records, err := e.store.ListPerformance(ctx, creatorID)
	if err != nil {
		return nil, nil, upstreamError(ctx, "list performance", err)
	}
	posts, err := e.store.ListPosts(ctx, creatorID)
	if err != nil {
		return nil, nil, upstreamError(ctx, "list posts", err)
	}
	return records, posts, nil
}

func (e *Engine) requestLogger(ctx context.Context, creatorID string) zerolog.Logger {
	ctx = logging.ContextWithCreatorID(logging.ContextWithLogger(ctx, e.logger), creatorID)
	return logging.CtxWith(ctx).Logger()
}

func validateCreatorID(creatorID string) error {
	if err := validation.GetValidator().Var(creatorID, "identifier"); err != nil {
		return fmt.Errorf("%w: creator_id must be a non-empty identifier", ErrInvalidRequest)
	}
	return nil
}
