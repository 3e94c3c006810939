// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tomtom215/creatorlens/internal/api"
	"github.com/tomtom215/creatorlens/internal/config"
	"github.com/tomtom215/creatorlens/internal/database"
	"github.com/tomtom215/creatorlens/internal/events"
	"github.com/tomtom215/creatorlens/internal/insights"
	"github.com/tomtom215/creatorlens/internal/insights/storage"
	"github.com/tomtom215/creatorlens/internal/logging"
	"github.com/tomtom215/creatorlens/internal/supervisor"
	"github.com/tomtom215/creatorlens/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocyclo // sequential setup steps
func run(cfg *config.Config) error {
	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("snapshot_store", string(cfg.Snapshots.Type)).
		Dur("insights_ttl", cfg.Insights.TTL).
		Msg("Starting creatorlens")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedMockData {
		logging.Info().Int("creators", cfg.Database.SeedCreators).Msg("Mock data seeding enabled (SEED_MOCK_DATA=true)")
		if err := db.SeedMockData(context.Background(), cfg.Database.SeedCreators, time.Now()); err != nil {
			return fmt.Errorf("seed mock data: %w", err)
		}
	}

	var metricsStore insights.MetricsStore = db
	circuitState := func() string { return "disabled" }
	if cfg.CircuitBreaker.Enabled {
		breaker := database.NewCircuitBreakerStore(db, &cfg.CircuitBreaker)
		metricsStore = breaker
		circuitState = func() string { return breaker.State().String() }
	}

	factory, err := storage.NewFactory(cfg.Snapshots)
	if err != nil {
		return fmt.Errorf("initialize snapshot store: %w", err)
	}
	defer func() {
		if err := factory.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing snapshot store")
		}
	}()

	var opts []insights.Option
	var bus *events.Bus
	if cfg.Events.Enabled {
		bus = events.NewBus(cfg.Events.BufferSize, logging.WithComponent("events"))
		defer func() {
			if err := bus.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing event bus")
			}
		}()
		db.SetObserver(bus)
		defer db.SetObserver(nil)
		opts = append(opts, insights.WithPublisher(bus))
	}

	engine, err := insights.NewEngine(&cfg.Insights, metricsStore, factory.CreateStore(), logging.WithComponent("insights"), opts...)
	if err != nil {
		return fmt.Errorf("initialize insights engine: %w", err)
	}
	// In-flight regenerations finish before the stores close.
	defer engine.Close()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Refresh.Enabled {
		tree.AddDataService(services.NewRefreshService(engine, db, services.RefreshServiceConfig{
			Interval:      cfg.Refresh.Interval,
			RatePerSecond: cfg.Refresh.RatePerSecond,
			Burst:         cfg.Refresh.Burst,
			WarmOnStartup: cfg.Refresh.WarmOnStartup,
		}, logging.Logger()))
	}

	if bus != nil {
		listener := events.NewPerformanceListener(bus, logging.Logger())
		tree.AddMessagingService(services.NewEventListenerService(listener, "performance-listener"))
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           api.NewRouter(api.NewHealthHandler(db, circuitState)),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for services to stop")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	return nil
}
