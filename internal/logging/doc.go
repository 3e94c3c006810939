// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
Package logging provides centralized zerolog-based logging for Creatorlens.

A single global zerolog logger is configured once at startup and shared by
every package. JSON output is the default; console output is meant for local
development.

# Quick Start

	logging.Init(logging.Config{
	    Level:  "info",
	    Format: "json",
	})

	logging.Info().Msg("Server starting")
	logging.Error().Err(err).Msg("Operation failed")

Components receive a zerolog.Logger by value and derive their own fields:

	logger := logging.WithComponent("insights")
	engine, err := insights.NewEngine(cfg, store, snapshots, logger)

# Correlation IDs

Background work that spans several components (a refresh sweep, an event
delivery) carries a correlation ID in its context:

	ctx = logging.ContextWithNewCorrelationID(ctx)
	logging.Ctx(ctx).Info().Msg("Refresh sweep started")

# slog Interop

SlogHandler adapts zerolog to log/slog for libraries that only accept an
*slog.Logger, such as sutureslog:

	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()

# Configuration

Environment variables (through internal/config):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

Always terminate log chains with .Msg() or .Send(); an unterminated event is
never written.
*/
package logging
