// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"sort"
)

// EngagementScore computes the weighted interaction rate of a record:
// (likes*Wl + comments*Wc + shares*Ws) / max(reach, 1), clamped to [0,1].
// Negative counters count as zero; a record without reach scores 0.
//
//nolint:gocritic // hugeParam: records are passed by value to keep the function pure
func (s ScoringConfig) EngagementScore(rec PerformanceRecord) float64 {
	reach := nonNegative(rec.Reach)
	if reach == 0 {
		return 0
	}
	numerator := float64(nonNegative(rec.Likes))*s.LikeWeight +
		float64(nonNegative(rec.Comments))*s.CommentWeight +
		float64(nonNegative(rec.Shares))*s.ShareWeight
	return clamp01(numerator / float64(max(reach, 1)))
}

// ReachScore normalizes reach against the creator's median reach.
// postCount is the number of posts the median was computed over; with fewer
// than two posts, or a zero median, any positive reach scores 1.
func ReachScore(reach int64, medianReach float64, postCount int) float64 {
	reach = nonNegative(reach)
	if postCount < 2 || medianReach <= 0 {
		if reach > 0 {
			return 1
		}
		return 0
	}
	return clamp01(float64(reach) / medianReach)
}

// CompositeScore blends engagement and reach into a single ranking score.
func (s ScoringConfig) CompositeScore(engagement, reach float64) float64 {
	return clamp01(s.EngagementWeight*engagement + s.ReachWeight*reach)
}

// ScorePosts joins performance records with post metadata and scores them.
//
// When a post has several records only the most recently collected one is
// used. The reach median is taken over the MedianWindow most recently
// published posts. The result is ordered by publication time, newest first,
// with post id as the tie-break.
func (c *Config) ScorePosts(records []PerformanceRecord, posts []PostMetadata) []ScoredPost {
	if len(records) == 0 {
		return nil
	}

	meta := make(map[string]*PostMetadata, len(posts))
	for i := range posts {
		meta[posts[i].PostID] = &posts[i]
	}

	scored := make([]ScoredPost, 0, len(records))
	index := make(map[string]int, len(records))
	for i := range records {
		rec := records[i]
		if rec.PostID != "" {
			if at, ok := index[rec.PostID]; ok {
				if rec.CollectedAt.After(scored[at].Record.CollectedAt) {
					scored[at].Record = rec
				}
				continue
			}
			index[rec.PostID] = len(scored)
		}
		scored = append(scored, ScoredPost{Record: rec, Metadata: meta[rec.PostID]})
	}

	sortNewestFirst(scored)

	window := min(c.Scoring.MedianWindow, len(scored))
	reaches := make([]float64, 0, window)
	for i := 0; i < window; i++ {
		reaches = append(reaches, float64(nonNegative(scored[i].Record.Reach)))
	}
	medianReach := median(reaches)

	for i := range scored {
		p := &scored[i]
		p.EngagementScore = c.Scoring.EngagementScore(p.Record)
		p.ReachScore = ReachScore(p.Record.Reach, medianReach, len(scored))
		p.CompositeScore = c.Scoring.CompositeScore(p.EngagementScore, p.ReachScore)
	}
	return scored
}

// sortNewestFirst orders posts by publication time descending, then post id.
func sortNewestFirst(posts []ScoredPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := posts[i].PublishedAt(), posts[j].PublishedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return posts[i].Record.PostID < posts[j].Record.PostID
	})
}

// MedianComposite returns the median composite score of posts.
func MedianComposite(posts []ScoredPost) float64 {
	scores := make([]float64, len(posts))
	for i := range posts {
		scores[i] = posts[i].CompositeScore
	}
	return median(scores)
}

// AverageComposite returns the mean composite score of posts.
func AverageComposite(posts []ScoredPost) float64 {
	scores := make([]float64, len(posts))
	for i := range posts {
		scores[i] = posts[i].CompositeScore
	}
	return mean(scores)
}
