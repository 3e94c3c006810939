// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package storage

import (
	"context"
	"sync"

	"github.com/tomtom215/creatorlens/internal/insights"
)

const backendMemory = "memory"

// MemoryStore is an in-memory snapshot store.
type MemoryStore struct {
	mu      sync.RWMutex
	history map[string][]*insights.InsightSnapshot // newest first
	retain  int
}

// NewMemoryStore creates a memory store keeping retain snapshots per creator.
func NewMemoryStore(retain int) *MemoryStore {
	if retain <= 0 {
		retain = DefaultRetainHistory
	}
	return &MemoryStore{
		history: make(map[string][]*insights.InsightSnapshot),
		retain:  retain,
	}
}

// GetLatest returns the creator's latest snapshot.
func (s *MemoryStore) GetLatest(ctx context.Context, creatorID string) (*insights.InsightSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	h := s.history[creatorID]
	s.mu.RUnlock()

	if len(h) == 0 {
		recordOperation(backendMemory, "get", nil)
		return nil, insights.ErrSnapshotNotFound
	}
	recordOperation(backendMemory, "get", nil)
	return h[0], nil
}

// Put makes snap the creator's latest snapshot.
func (s *MemoryStore) Put(ctx context.Context, snap *insights.InsightSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	h := append([]*insights.InsightSnapshot{snap}, s.history[snap.CreatorID]...)
	if len(h) > s.retain {
		h = h[:s.retain]
	}
	s.history[snap.CreatorID] = h
	s.mu.Unlock()

	recordOperation(backendMemory, "put", nil)
	return nil
}

// History returns up to limit snapshots, newest first.
func (s *MemoryStore) History(ctx context.Context, creatorID string, limit int) ([]*insights.InsightSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	h := s.history[creatorID]
	if limit > 0 && len(h) > limit {
		h = h[:limit]
	}
	recordOperation(backendMemory, "history", nil)
	return append([]*insights.InsightSnapshot(nil), h...), nil
}
