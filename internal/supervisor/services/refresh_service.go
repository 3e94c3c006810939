// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/creatorlens/internal/logging"
	"github.com/tomtom215/creatorlens/internal/metrics"
)

// InsightRefresher is the part of the insights engine the refresher drives.
type InsightRefresher interface {
	StaleCreators(ctx context.Context) []string
	Refresh(ctx context.Context, creatorID string) bool
}

// CreatorLister enumerates creators known to the metrics store.
type CreatorLister interface {
	ListCreators(ctx context.Context) ([]string, error)
}

// RefreshServiceConfig holds configuration for the refresh service.
type RefreshServiceConfig struct {
	// Interval between stale sweeps. Defaults to one minute.
	Interval time.Duration

	// RatePerSecond and Burst pace the regenerations of a single sweep.
	// A non-positive rate disables pacing.
	RatePerSecond float64
	Burst         int

	// WarmOnStartup starts a regeneration for every creator returned by the
	// lister before the first sweep.
	WarmOnStartup bool
}

// RefreshService periodically starts background regenerations for creators
// whose snapshot has outlived its TTL.
type RefreshService struct {
	engine  InsightRefresher
	lister  CreatorLister
	config  RefreshServiceConfig
	limiter *rate.Limiter
	logger  zerolog.Logger
	name    string
}

// NewRefreshService creates a refresh service. lister may be nil when no
// warmup is wanted.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRefreshService(engine InsightRefresher, lister CreatorLister, cfg RefreshServiceConfig, logger zerolog.Logger) *RefreshService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	return &RefreshService{
		engine:  engine,
		lister:  lister,
		config:  cfg,
		limiter: rate.NewLimiter(limit, cfg.Burst),
		logger:  logger.With().Str("service", "refresh").Logger(),
		name:    "refresh-service",
	}
}

// Serve implements suture.Service.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Float64("rate_per_second", s.config.RatePerSecond).
		Bool("warm_on_startup", s.config.WarmOnStartup).
		Msg("Refresh service starting")

	if s.config.WarmOnStartup && s.lister != nil {
		if err := s.warm(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn().Err(err).Msg("Startup warmup failed, stale sweeps continue")
		}
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}

// Sweep starts a regeneration for each stale creator and returns how many
// were started. It stops early with the context error on cancellation.
func (s *RefreshService) Sweep(ctx context.Context) (int, error) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	stale := s.engine.StaleCreators(ctx)

	started, err := s.trigger(ctx, stale)
	metrics.RecordRefreshSweep(started)

	if started > 0 || err != nil {
		logging.Ctx(ctx).Debug().
			Int("stale", len(stale)).
			Int("triggered", started).
			Err(err).
			Msg("Refresh sweep finished")
	}
	return started, err
}

func (s *RefreshService) warm(ctx context.Context) error {
	ctx = logging.ContextWithNewCorrelationID(ctx)

	creators, err := s.lister.ListCreators(ctx)
	if err != nil {
		return err
	}

	started, err := s.trigger(ctx, creators)
	logging.Ctx(ctx).Info().
		Int("creators", len(creators)).
		Int("triggered", started).
		Msg("Startup warmup scheduled")
	return err
}

func (s *RefreshService) trigger(ctx context.Context, creators []string) (int, error) {
	started := 0
	for _, id := range creators {
		if err := s.limiter.Wait(ctx); err != nil {
			return started, err
		}
		if s.engine.Refresh(ctx, id) {
			started++
		}
	}
	return started, nil
}

// String returns the service name for logging.
func (s *RefreshService) String() string {
	return s.name
}
