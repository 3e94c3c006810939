// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/creatorlens/internal/insights"
)

const backendBadger = "badger"

// Key prefixes for BadgerDB storage. History keys end in a zero-padded
// timestamp so lexical order is chronological order.
const (
	latestKeyPrefix  = "snapshot:latest:"
	historyKeyPrefix = "snapshot:history:"
)

// BadgerStore is a BadgerDB-backed snapshot store.
type BadgerStore struct {
	db     *badger.DB
	retain int
}

// NewBadgerStore creates a store on an open BadgerDB.
func NewBadgerStore(db *badger.DB, retain int) *BadgerStore {
	if retain <= 0 {
		retain = DefaultRetainHistory
	}
	return &BadgerStore{db: db, retain: retain}
}

func latestKey(creatorID string) []byte {
	return []byte(latestKeyPrefix + creatorID)
}

// historyPrefix ends in a NUL so creator "a" does not match creator "a:b".
func historyPrefix(creatorID string) []byte {
	return []byte(historyKeyPrefix + creatorID + "\x00")
}

func historyKey(snap *insights.InsightSnapshot) []byte {
	return append(historyPrefix(snap.CreatorID),
		fmt.Sprintf("%020d:%s", snap.GeneratedAt.UnixNano(), snap.ID)...)
}

// GetLatest returns the creator's latest snapshot.
func (s *BadgerStore) GetLatest(ctx context.Context, creatorID string) (*insights.InsightSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var snap insights.InsightSnapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(latestKey(creatorID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return insights.ErrSnapshotNotFound
		}
		if err != nil {
			return fmt.Errorf("get snapshot: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	recordOperation(backendBadger, "get", err)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Put replaces the latest snapshot, appends it to history and trims history,
// all in one transaction.
func (s *BadgerStore) Put(ctx context.Context, snap *insights.InsightSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(latestKey(snap.CreatorID), data); err != nil {
			return fmt.Errorf("set latest snapshot: %w", err)
		}
		if err := txn.Set(historyKey(snap), data); err != nil {
			return fmt.Errorf("set history entry: %w", err)
		}
		return s.trimHistory(txn, snap.CreatorID)
	})
	recordOperation(backendBadger, "put", err)
	return err
}

// trimHistory deletes all but the newest retain history entries.
func (s *BadgerStore) trimHistory(txn *badger.Txn, creatorID string) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Reverse = true
	it := txn.NewIterator(opts)

	prefix := historyPrefix(creatorID)
	var expired [][]byte
	kept := 0
	for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
		if kept < s.retain {
			kept++
			continue
		}
		expired = append(expired, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range expired {
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
	}
	return nil
}

// History returns up to limit snapshots, newest first.
func (s *BadgerStore) History(ctx context.Context, creatorID string, limit int) ([]*insights.InsightSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []*insights.InsightSnapshot
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := historyPrefix(creatorID)
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(out) >= limit {
				break
			}
			var snap insights.InsightSnapshot
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &snap)
			}); err != nil {
				return fmt.Errorf("decode history entry: %w", err)
			}
			out = append(out, &snap)
		}
		return nil
	})
	recordOperation(backendBadger, "history", err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
