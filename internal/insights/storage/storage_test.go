// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/insights"
)

var baseTime = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func snapshotAt(creatorID string, i int) *insights.InsightSnapshot {
	return &insights.InsightSnapshot{
		ID:          fmt.Sprintf("%s-snap-%d", creatorID, i),
		CreatorID:   creatorID,
		GeneratedAt: baseTime.Add(time.Duration(i) * time.Hour),
		PostCount:   i,
		Recommendations: []analytics.Recommendation{
			analytics.NewTimingRecommendation(analytics.PriorityHigh, "Schedule posts in the evening", "evening posts lead").
				WithImpact(0.5).
				WithEvidence(analytics.AttributeTimeOfDay, analytics.TimeEvening),
		},
	}
}

func newStores(t *testing.T, retain int) map[string]insights.SnapshotStore {
	t.Helper()

	f, err := NewFactory(Config{Type: StoreBadger, InMemory: true, RetainHistory: retain})
	if err != nil {
		t.Fatalf("NewFactory() error = %v", err)
	}
	t.Cleanup(func() {
		if err := f.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	return map[string]insights.SnapshotStore{
		"memory": NewMemoryStore(retain),
		"badger": f.CreateStore(),
	}
}

func TestSnapshotStore_GetLatestMissing(t *testing.T) {
	for name, store := range newStores(t, 3) {
		t.Run(name, func(t *testing.T) {
			_, err := store.GetLatest(context.Background(), "nobody")
			if !errors.Is(err, insights.ErrSnapshotNotFound) {
				t.Errorf("GetLatest() error = %v, want ErrSnapshotNotFound", err)
			}
		})
	}
}

func TestSnapshotStore_PutReplacesLatest(t *testing.T) {
	ctx := context.Background()
	for name, store := range newStores(t, 3) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 2; i++ {
				if err := store.Put(ctx, snapshotAt("creator-1", i)); err != nil {
					t.Fatalf("Put() error = %v", err)
				}
			}

			latest, err := store.GetLatest(ctx, "creator-1")
			if err != nil {
				t.Fatalf("GetLatest() error = %v", err)
			}
			if latest.ID != "creator-1-snap-2" {
				t.Errorf("latest = %s, want creator-1-snap-2", latest.ID)
			}
			if len(latest.Recommendations) != 1 || latest.Recommendations[0].Type != analytics.TypeTiming {
				t.Errorf("recommendations not preserved: %+v", latest.Recommendations)
			}
			if latest.Recommendations[0].Impact() != 0.5 {
				t.Errorf("impact = %f, want 0.5", latest.Recommendations[0].Impact())
			}
			if !latest.GeneratedAt.Equal(baseTime.Add(2 * time.Hour)) {
				t.Errorf("generated_at = %s", latest.GeneratedAt)
			}
		})
	}
}

func TestSnapshotStore_HistoryIsBoundedAndNewestFirst(t *testing.T) {
	ctx := context.Background()
	for name, store := range newStores(t, 3) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				if err := store.Put(ctx, snapshotAt("creator-1", i)); err != nil {
					t.Fatalf("Put() error = %v", err)
				}
			}

			history, err := store.History(ctx, "creator-1", 10)
			if err != nil {
				t.Fatalf("History() error = %v", err)
			}
			want := []string{"creator-1-snap-5", "creator-1-snap-4", "creator-1-snap-3"}
			if len(history) != len(want) {
				t.Fatalf("len(history) = %d, want %d", len(history), len(want))
			}
			for i, id := range want {
				if history[i].ID != id {
					t.Errorf("history[%d] = %s, want %s", i, history[i].ID, id)
				}
			}

			limited, err := store.History(ctx, "creator-1", 1)
			if err != nil {
				t.Fatalf("History() error = %v", err)
			}
			if len(limited) != 1 || limited[0].ID != "creator-1-snap-5" {
				t.Errorf("limited history = %v", limited)
			}
		})
	}
}

func TestSnapshotStore_CreatorsAreIsolated(t *testing.T) {
	ctx := context.Background()
	for name, store := range newStores(t, 3) {
		t.Run(name, func(t *testing.T) {
			if err := store.Put(ctx, snapshotAt("a", 1)); err != nil {
				t.Fatal(err)
			}
			if err := store.Put(ctx, snapshotAt("a:b", 2)); err != nil {
				t.Fatal(err)
			}

			history, err := store.History(ctx, "a", 10)
			if err != nil {
				t.Fatalf("History() error = %v", err)
			}
			if len(history) != 1 || history[0].CreatorID != "a" {
				t.Errorf("history for a = %v", history)
			}
		})
	}
}

func TestSnapshotStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, store := range newStores(t, 3) {
		t.Run(name, func(t *testing.T) {
			if err := store.Put(ctx, snapshotAt("creator-1", 1)); !errors.Is(err, context.Canceled) {
				t.Errorf("Put() error = %v, want context.Canceled", err)
			}
		})
	}
}

func TestNewFactory_UnknownType(t *testing.T) {
	if _, err := NewFactory(Config{Type: "redis"}); err == nil {
		t.Error("expected error for unknown store type")
	}
}

func TestNewFactory_DefaultsToMemory(t *testing.T) {
	f, err := NewFactory(Config{})
	if err != nil {
		t.Fatalf("NewFactory() error = %v", err)
	}
	defer f.Close()

	if _, ok := f.CreateStore().(*MemoryStore); !ok {
		t.Error("expected a memory store by default")
	}
}
