// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"sort"
)

// valueGroup accumulates the posts sharing one attribute value.
type valueGroup struct {
	value  string
	count  int
	scores []float64
}

// DetectPatterns selects the top-performing posts and reports the attribute
// values they share.
//
// topPostsCount <= 0 uses the configured default. With fewer than
// Patterns.MinPosts posts the result is empty and marked insufficient.
func (c *Config) DetectPatterns(posts []ScoredPost, topPostsCount int) PatternResult {
	if len(posts) < c.Patterns.MinPosts {
		return PatternResult{InsufficientEvidence: true}
	}
	if topPostsCount <= 0 {
		topPostsCount = c.Patterns.TopPostsCount
	}

	top := TopPosts(posts, topPostsCount)
	result := PatternResult{
		SelectedCount:   len(top),
		EvidencePostIDs: make([]string, len(top)),
	}
	for i := range top {
		result.EvidencePostIDs[i] = top[i].Record.PostID
	}

	minSupport := c.Patterns.SupportThreshold * float64(len(top))
	for _, attr := range Attributes {
		groups := c.Buckets.groupBy(top, attr, func(p *ScoredPost) float64 { return p.CompositeScore })
		if len(groups) == 0 {
			continue
		}
		best := modalGroup(groups)
		if float64(best.count) < minSupport {
			continue
		}
		result.Entries = append(result.Entries, PatternEntry{
			Attribute:    attr,
			Value:        best.value,
			SupportCount: best.count,
			AverageScore: mean(best.scores),
		})
	}
	return result
}

// TopPosts returns the n best posts by composite score. Ties go to the more
// recently collected post, then the lower post id. The input is not modified.
func TopPosts(posts []ScoredPost, n int) []ScoredPost {
	ranked := make([]ScoredPost, len(posts))
	copy(ranked, posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		if a.CompositeScore != b.CompositeScore {
			return a.CompositeScore > b.CompositeScore
		}
		if !a.Record.CollectedAt.Equal(b.Record.CollectedAt) {
			return a.Record.CollectedAt.After(b.Record.CollectedAt)
		}
		return a.Record.PostID < b.Record.PostID
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// groupBy buckets posts by their value of attr, collecting metric per post.
// Groups are returned sorted by value.
func (b BucketConfig) groupBy(posts []ScoredPost, attr Attribute, metric func(*ScoredPost) float64) []*valueGroup {
	byValue := make(map[string]*valueGroup)
	for i := range posts {
		v, ok := b.attributeValue(&posts[i], attr)
		if !ok {
			continue
		}
		g := byValue[v]
		if g == nil {
			g = &valueGroup{value: v}
			byValue[v] = g
		}
		g.count++
		g.scores = append(g.scores, metric(&posts[i]))
	}

	groups := make([]*valueGroup, 0, len(byValue))
	for _, g := range byValue {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].value < groups[j].value })
	return groups
}

// modalGroup returns the most frequent group; ties go to the higher average,
// then the lexically smaller value. groups must be sorted by value.
func modalGroup(groups []*valueGroup) *valueGroup {
	best := groups[0]
	for _, g := range groups[1:] {
		if g.count > best.count || (g.count == best.count && mean(g.scores) > mean(best.scores)) {
			best = g
		}
	}
	return best
}
