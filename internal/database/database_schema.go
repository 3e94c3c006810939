// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

/*
database_schema.go - Database Schema Management

Tables:
  - posts: post metadata, one row per post (upserted)
  - performance_records: append-only measurements, many per post

Timestamps are stored as UTC TIMESTAMP values so the schema does not depend
on the ICU extension.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the tables and indexes
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func getTableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS posts (
			post_id TEXT PRIMARY KEY,
			creator_id TEXT NOT NULL,
			platform TEXT NOT NULL,
			content_type TEXT NOT NULL DEFAULT '',
			content_length INTEGER NOT NULL DEFAULT 0,
			hashtag_count INTEGER NOT NULL DEFAULT 0,
			scheduled_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS performance_records (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL,
			creator_id TEXT NOT NULL,
			platform TEXT NOT NULL,
			likes BIGINT NOT NULL DEFAULT 0,
			comments BIGINT NOT NULL DEFAULT 0,
			shares BIGINT NOT NULL DEFAULT 0,
			reach BIGINT NOT NULL DEFAULT 0,
			collected_at TIMESTAMP NOT NULL
		);`,

		`CREATE INDEX IF NOT EXISTS idx_posts_creator ON posts(creator_id);`,
		`CREATE INDEX IF NOT EXISTS idx_performance_creator ON performance_records(creator_id, collected_at);`,
	}
}
