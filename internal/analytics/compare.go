// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"sort"
	"time"
)

// CompareContentTypes scores the posts published within [start, end] and
// aggregates them per content type. Scores are relative to the posts in the
// range, so the reach median is taken over that window only.
func (c *Config) CompareContentTypes(creatorID string, records []PerformanceRecord, posts []PostMetadata, start, end time.Time) ContentComparisonResult {
	result := ContentComparisonResult{CreatorID: creatorID, Start: start, End: end}

	scored := c.ScorePosts(records, posts)
	var inRange []ScoredPost
	for i := range scored {
		at := scored[i].PublishedAt()
		if at.Before(start) || at.After(end) {
			continue
		}
		inRange = append(inRange, scored[i])
	}
	if len(inRange) == 0 {
		result.InsufficientEvidence = true
		return result
	}

	// Rescore so the reach median reflects the requested window.
	windowRecords := make([]PerformanceRecord, len(inRange))
	for i := range inRange {
		windowRecords[i] = inRange[i].Record
	}
	inRange = c.ScorePosts(windowRecords, posts)

	type acc struct {
		stats               ContentTypeStats
		eng, reach, compSum float64
	}
	byType := make(map[string]*acc)
	for i := range inRange {
		p := &inRange[i]
		ct := p.ContentType()
		a := byType[ct]
		if a == nil {
			a = &acc{stats: ContentTypeStats{ContentType: ct}}
			byType[ct] = a
		}
		a.stats.PostCount++
		a.stats.TotalLikes += nonNegative(p.Record.Likes)
		a.stats.TotalComments += nonNegative(p.Record.Comments)
		a.stats.TotalShares += nonNegative(p.Record.Shares)
		a.eng += p.EngagementScore
		a.reach += p.ReachScore
		a.compSum += p.CompositeScore
	}

	result.Types = make([]ContentTypeStats, 0, len(byType))
	for _, a := range byType {
		n := float64(a.stats.PostCount)
		a.stats.AverageEngagement = a.eng / n
		a.stats.AverageReach = a.reach / n
		a.stats.AverageComposite = a.compSum / n
		result.Types = append(result.Types, a.stats)
	}
	sort.Slice(result.Types, func(i, j int) bool {
		if result.Types[i].AverageComposite != result.Types[j].AverageComposite {
			return result.Types[i].AverageComposite > result.Types[j].AverageComposite
		}
		return result.Types[i].ContentType < result.Types[j].ContentType
	})
	result.BestType = result.Types[0].ContentType
	return result
}
