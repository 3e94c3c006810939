// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package database

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tomtom215/creatorlens/internal/analytics"
	"github.com/tomtom215/creatorlens/internal/logging"
)

const (
	seedPostsPerCreator = 60
	seedDaysOfHistory   = 90
)

var (
	seedPlatforms    = []string{"instagram", "twitter", "tiktok", "youtube", "linkedin"}
	seedContentTypes = []string{"image", "video", "reel", "carousel", "text", "story"}
)

// SeedCreatorID returns the id of the i-th seeded creator.
func SeedCreatorID(i int) string {
	return fmt.Sprintf("creator-%03d", i+1)
}

// SeedMockData fills an empty database with demo posts and measurements.
// The data depends only on creators and until, so repeated runs produce the
// same rows. A database that already holds records is left untouched.
func (db *DB) SeedMockData(ctx context.Context, creators int, until time.Time) error {
	n, err := db.CountRecords(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logging.Info().Int64("records", n).Msg("Metrics database not empty, skipping mock data")
		return nil
	}

	logging.Info().Int("creators", creators).Msg("Seeding metrics database with mock data...")

	until = until.UTC().Truncate(time.Hour)
	for i := 0; i < creators; i++ {
		posts, records := mockCreator(SeedCreatorID(i), uint64(i+1), until)
		if err := db.InsertPosts(ctx, posts); err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		if err := db.InsertPerformanceRecords(ctx, records); err != nil {
			return fmt.Errorf("seed records: %w", err)
		}
	}

	logging.Info().
		Int("creators", creators).
		Int("posts_per_creator", seedPostsPerCreator).
		Msg("Mock data seeded")
	return nil
}

// mockCreator generates one creator's history. Each creator favours one
// platform and evening posting so the detectors have something to find.
func mockCreator(creatorID string, seed uint64, until time.Time) ([]analytics.PostMetadata, []analytics.PerformanceRecord) {
	rng := rand.New(rand.NewPCG(seed, seed*7919))
	favourite := seedPlatforms[rng.IntN(len(seedPlatforms))]
	start := until.Add(-seedDaysOfHistory * 24 * time.Hour)

	posts := make([]analytics.PostMetadata, 0, seedPostsPerCreator)
	records := make([]analytics.PerformanceRecord, 0, seedPostsPerCreator*2)

	for p := 0; p < seedPostsPerCreator; p++ {
		day := rng.IntN(seedDaysOfHistory)
		hour := rng.IntN(24)
		created := start.Add(time.Duration(day)*24*time.Hour + time.Duration(hour)*time.Hour)

		platform := seedPlatforms[rng.IntN(len(seedPlatforms))]
		post := analytics.PostMetadata{
			PostID:        fmt.Sprintf("%s-post-%03d", creatorID, p+1),
			CreatorID:     creatorID,
			Platform:      platform,
			ContentType:   seedContentTypes[rng.IntN(len(seedContentTypes))],
			ContentLength: rng.IntN(800),
			HashtagCount:  rng.IntN(8),
			CreatedAt:     created,
		}
		if rng.IntN(3) == 0 {
			scheduled := created.Add(time.Duration(rng.IntN(6)) * time.Hour)
			post.ScheduledAt = &scheduled
		}
		posts = append(posts, post)

		reach := int64(500 + rng.IntN(5000))
		rate := 0.02 + rng.Float64()*0.04
		if platform == favourite {
			rate *= 2
		}
		if hour >= 18 {
			rate *= 1.5
		}

		// One to three measurements per post, counters growing over time.
		measurements := 1 + rng.IntN(3)
		for m := 1; m <= measurements; m++ {
			growth := float64(m) / float64(measurements)
			r := int64(float64(reach) * growth)
			interactions := float64(r) * rate
			records = append(records, analytics.PerformanceRecord{
				PostID:      post.PostID,
				CreatorID:   creatorID,
				Platform:    platform,
				Likes:       int64(interactions * 0.8),
				Comments:    int64(interactions * 0.15),
				Shares:      int64(interactions * 0.05),
				Reach:       r,
				CollectedAt: created.Add(time.Duration(m*6) * time.Hour),
			})
		}
	}
	return posts, records
}
