// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"fmt"
	"math"
	"time"
)

var baseTime = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// postSpec describes a test post compactly.
type postSpec struct {
	platform    string
	likes       int64
	comments    int64
	shares      int64
	reach       int64
	day         int
	hour        int
	length      int
	hashtags    int
	contentType string
	noMetadata  bool
}

// buildPosts turns specs into records and metadata. Post ids are p00, p01, ...
// and each post is measured two days after it was created.
func buildPosts(specs []postSpec) ([]PerformanceRecord, []PostMetadata) {
	records := make([]PerformanceRecord, 0, len(specs))
	posts := make([]PostMetadata, 0, len(specs))
	for i, s := range specs {
		id := fmt.Sprintf("p%02d", i)
		created := baseTime.Add(time.Duration(s.day)*24*time.Hour + time.Duration(s.hour)*time.Hour)
		records = append(records, PerformanceRecord{
			PostID:      id,
			CreatorID:   "creator-1",
			Platform:    s.platform,
			Likes:       s.likes,
			Comments:    s.comments,
			Shares:      s.shares,
			Reach:       s.reach,
			CollectedAt: created.Add(48 * time.Hour),
		})
		if s.noMetadata {
			continue
		}
		posts = append(posts, PostMetadata{
			PostID:        id,
			CreatorID:     "creator-1",
			Platform:      s.platform,
			ContentType:   s.contentType,
			ContentLength: s.length,
			HashtagCount:  s.hashtags,
			CreatedAt:     created,
		})
	}
	return records, posts
}

// scoredPosts builds and scores specs with the default configuration.
func scoredPosts(specs []postSpec) []ScoredPost {
	records, posts := buildPosts(specs)
	return DefaultConfig().ScorePosts(records, posts)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
