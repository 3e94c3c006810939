// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/creatorlens/internal/insights"
	"github.com/tomtom215/creatorlens/internal/metrics"
)

// StoreType selects a snapshot storage backend.
type StoreType string

const (
	// StoreMemory keeps snapshots in process memory.
	StoreMemory StoreType = "memory"

	// StoreBadger persists snapshots in BadgerDB.
	StoreBadger StoreType = "badger"
)

// DefaultRetainHistory is the number of snapshots kept per creator.
const DefaultRetainHistory = 5

// Config selects and configures the snapshot backend.
type Config struct {
	// Type is memory or badger. Empty means memory.
	Type StoreType `koanf:"type"`

	// Path is the BadgerDB directory. Ignored for memory.
	Path string `koanf:"path"`

	// InMemory runs BadgerDB without touching disk.
	InMemory bool `koanf:"in_memory"`

	// RetainHistory bounds the per-creator history, including the latest snapshot.
	// Default: 5.
	RetainHistory int `koanf:"retain_history"`
}

// Factory opens the configured backend and owns its resources.
type Factory struct {
	cfg Config
	db  *badger.DB
}

// NewFactory opens the backend described by cfg.
func NewFactory(cfg Config) (*Factory, error) {
	if cfg.RetainHistory <= 0 {
		cfg.RetainHistory = DefaultRetainHistory
	}

	f := &Factory{cfg: cfg}
	switch cfg.Type {
	case "", StoreMemory:
	case StoreBadger:
		opts := badger.DefaultOptions(cfg.Path)
		if cfg.InMemory {
			opts = badger.DefaultOptions("").WithInMemory(true)
		}
		opts.Logger = nil

		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger db for snapshots: %w", err)
		}
		f.db = db
	default:
		return nil, fmt.Errorf("unknown snapshot store type %q", cfg.Type)
	}
	return f, nil
}

// CreateStore returns the snapshot store for the configured backend.
func (f *Factory) CreateStore() insights.SnapshotStore {
	if f.db != nil {
		return NewBadgerStore(f.db, f.cfg.RetainHistory)
	}
	return NewMemoryStore(f.cfg.RetainHistory)
}

// Close closes the underlying BadgerDB if one was opened.
func (f *Factory) Close() error {
	if f.db != nil {
		return f.db.Close()
	}
	return nil
}

// recordOperation counts a store operation. A miss is a successful lookup.
func recordOperation(backend, operation string, err error) {
	if errors.Is(err, insights.ErrSnapshotNotFound) {
		err = nil
	}
	metrics.RecordSnapshotOperation(backend, operation, err)
}
