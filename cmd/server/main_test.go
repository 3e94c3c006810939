// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/creatorlens/internal/config"
	"github.com/tomtom215/creatorlens/internal/insights/storage"
)

func TestRun_DatabaseInitFailure(t *testing.T) {
	// A regular file where the database directory should be makes
	// database setup fail before anything binds a port.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(blocker, "data", "creatorlens.duckdb")
	cfg.Snapshots.Type = storage.StoreBadger

	err := run(cfg)
	if err == nil {
		t.Fatal("expected run to fail")
	}
	if !strings.Contains(err.Error(), "initialize database") {
		t.Errorf("error = %v, want database initialization failure", err)
	}
}
