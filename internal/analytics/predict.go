// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

// Predict estimates the performance of a hypothetical post from the
// creator's history. Matching widens from platform + hour + length, to
// platform only, to all posts; the first level with at least
// Prediction.MinSupport posts is used. If none qualifies the creator's
// overall average is returned with low confidence and LowEvidence set.
//
// The request must already be validated.
//
//nolint:gocritic // hugeParam: request is read-only
func (c *Config) Predict(req PredictionRequest, posts []ScoredPost) PredictionResult {
	result := PredictionResult{CreatorID: req.CreatorID}
	if len(posts) == 0 {
		result.Confidence = ConfidenceLow
		result.MatchLevel = MatchGlobalFallback
		result.LowEvidence = true
		return result
	}

	reqLength := c.Buckets.LengthBucket(req.ContentLength)

	levels := []struct {
		confidence Confidence
		level      MatchLevel
		match      func(p *ScoredPost) bool
	}{
		{ConfidenceHigh, MatchPlatformHourLength, func(p *ScoredPost) bool {
			if p.Record.Platform != req.Platform || p.Metadata == nil {
				return false
			}
			at := p.PublishedAt()
			if at.IsZero() || hourDistance(at.Hour(), req.HourOfDay) > c.Prediction.HourWindow {
				return false
			}
			return c.Buckets.LengthBucket(p.Metadata.ContentLength) == reqLength
		}},
		{ConfidenceMedium, MatchPlatform, func(p *ScoredPost) bool {
			return p.Record.Platform == req.Platform
		}},
		{ConfidenceLow, MatchAll, func(*ScoredPost) bool { return true }},
	}

	for _, lvl := range levels {
		var matched []*ScoredPost
		for i := range posts {
			if lvl.match(&posts[i]) {
				matched = append(matched, &posts[i])
			}
		}
		if len(matched) >= c.Prediction.MinSupport {
			fillEstimate(&result, matched)
			result.Confidence = lvl.confidence
			result.MatchLevel = lvl.level
			return result
		}
	}

	all := make([]*ScoredPost, len(posts))
	for i := range posts {
		all[i] = &posts[i]
	}
	fillEstimate(&result, all)
	result.Confidence = ConfidenceLow
	result.MatchLevel = MatchGlobalFallback
	result.LowEvidence = true
	return result
}

func fillEstimate(result *PredictionResult, posts []*ScoredPost) {
	var eng, reach, comp float64
	for _, p := range posts {
		eng += p.EngagementScore
		reach += p.ReachScore
		comp += p.CompositeScore
	}
	n := float64(len(posts))
	result.EstimatedEngagement = eng / n
	result.EstimatedReach = reach / n
	result.EstimatedComposite = comp / n
	result.SupportCount = len(posts)
}

// hourDistance is the circular distance between two hours of the day.
func hourDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	d %= 24
	return min(d, 24-d)
}
