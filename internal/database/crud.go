// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/metrics"
)

const upsertPostQuery = `
	INSERT INTO posts (post_id, creator_id, platform, content_type, content_length, hashtag_count, scheduled_at, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (post_id) DO UPDATE SET
		creator_id = EXCLUDED.creator_id,
		platform = EXCLUDED.platform,
		content_type = EXCLUDED.content_type,
		content_length = EXCLUDED.content_length,
		hashtag_count = EXCLUDED.hashtag_count,
		scheduled_at = EXCLUDED.scheduled_at,
		created_at = EXCLUDED.created_at`

const insertRecordQuery = `
	INSERT INTO performance_records (id, post_id, creator_id, platform, likes, comments, shares, reach, collected_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertPost creates or replaces the metadata of a post.
func (db *DB) InsertPost(ctx context.Context, post *analytics.PostMetadata) error {
	return db.InsertPosts(ctx, []analytics.PostMetadata{*post})
}

// InsertPosts upserts post metadata in a single transaction.
func (db *DB) InsertPosts(ctx context.Context, posts []analytics.PostMetadata) (err error) {
	if len(posts) == 0 {
		return nil
	}

	start := time.Now()
	defer func() { metrics.RecordDBQuery("upsert", "posts", time.Since(start), err) }()

	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, upsertPostQuery)
	if err != nil {
		return fmt.Errorf("prepare post upsert: %w", err)
	}
	defer closeQuietly(stmt)

	for i := range posts {
		p := &posts[i]
		if p.PostID == "" || p.CreatorID == "" {
			return fmt.Errorf("post %d: post_id and creator_id are required", i)
		}
		if _, err = stmt.ExecContext(ctx,
			p.PostID, p.CreatorID, p.Platform, p.ContentType,
			p.ContentLength, p.HashtagCount, nullTime(p.ScheduledAt), p.CreatedAt.UTC(),
		); err != nil {
			return fmt.Errorf("upsert post %s: %w", p.PostID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit posts: %w", err)
	}
	return nil
}

// InsertPerformanceRecord appends a single measurement.
func (db *DB) InsertPerformanceRecord(ctx context.Context, rec *analytics.PerformanceRecord) error {
	return db.InsertPerformanceRecords(ctx, []analytics.PerformanceRecord{*rec})
}

// InsertPerformanceRecords appends measurements in a single transaction and
// notifies the observer once they are committed.
func (db *DB) InsertPerformanceRecords(ctx context.Context, records []analytics.PerformanceRecord) (err error) {
	if len(records) == 0 {
		return nil
	}

	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "performance_records", time.Since(start), err) }()

	qctx, cancel := db.queryContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(qctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(qctx, insertRecordQuery)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer closeQuietly(stmt)

	for i := range records {
		r := &records[i]
		if r.PostID == "" || r.CreatorID == "" {
			return fmt.Errorf("record %d: post_id and creator_id are required", i)
		}
		if r.Likes < 0 || r.Comments < 0 || r.Shares < 0 || r.Reach < 0 {
			return fmt.Errorf("record %d for post %s: counters must be non-negative", i, r.PostID)
		}
		if _, err = stmt.ExecContext(qctx,
			uuid.NewString(), r.PostID, r.CreatorID, r.Platform,
			r.Likes, r.Comments, r.Shares, r.Reach, r.CollectedAt.UTC(),
		); err != nil {
			return fmt.Errorf("insert record for post %s: %w", r.PostID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit records: %w", err)
	}

	db.notify(ctx, records)
	return nil
}

// ListPerformance returns all performance records of a creator, oldest first.
func (db *DB) ListPerformance(ctx context.Context, creatorID string) (records []analytics.PerformanceRecord, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "performance_records", time.Since(start), err) }()

	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT post_id, creator_id, platform, likes, comments, shares, reach, collected_at
		FROM performance_records
		WHERE creator_id = ?
		ORDER BY collected_at, post_id, id`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("query performance records: %w", err)
	}
	defer closeWithLog(rows, "rows")

	records = []analytics.PerformanceRecord{}
	for rows.Next() {
		var r analytics.PerformanceRecord
		if err = rows.Scan(&r.PostID, &r.CreatorID, &r.Platform,
			&r.Likes, &r.Comments, &r.Shares, &r.Reach, &r.CollectedAt); err != nil {
			return nil, fmt.Errorf("scan performance record: %w", err)
		}
		r.CollectedAt = r.CollectedAt.UTC()
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate performance records: %w", err)
	}
	return records, nil
}

// ListPosts returns the metadata of a creator's posts ordered by post id.
func (db *DB) ListPosts(ctx context.Context, creatorID string) (posts []analytics.PostMetadata, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "posts", time.Since(start), err) }()

	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT post_id, creator_id, platform, content_type, content_length, hashtag_count, scheduled_at, created_at
		FROM posts
		WHERE creator_id = ?
		ORDER BY post_id`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer closeWithLog(rows, "rows")

	posts = []analytics.PostMetadata{}
	for rows.Next() {
		var (
			p         analytics.PostMetadata
			scheduled sql.NullTime
		)
		if err = rows.Scan(&p.PostID, &p.CreatorID, &p.Platform, &p.ContentType,
			&p.ContentLength, &p.HashtagCount, &scheduled, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		if scheduled.Valid {
			t := scheduled.Time.UTC()
			p.ScheduledAt = &t
		}
		p.CreatedAt = p.CreatedAt.UTC()
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// ListCreators returns the distinct creators with performance data, sorted.
func (db *DB) ListCreators(ctx context.Context) (creators []string, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "performance_records", time.Since(start), err) }()

	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT DISTINCT creator_id FROM performance_records ORDER BY creator_id`)
	if err != nil {
		return nil, fmt.Errorf("query creators: %w", err)
	}
	defer closeWithLog(rows, "rows")

	creators = []string{}
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan creator: %w", err)
		}
		creators = append(creators, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate creators: %w", err)
	}
	return creators, nil
}

// CountRecords returns the total number of performance records.
func (db *DB) CountRecords(ctx context.Context) (int64, error) {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	var n int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM performance_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count performance records: %w", err)
	}
	return n, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
