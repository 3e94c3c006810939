// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

// AnalyzeSensitivity measures how strongly engagement depends on each
// attribute. Groups smaller than Sensitivity.MinGroupSize are ignored and
// attributes with fewer than two qualifying groups are omitted.
func (c *Config) AnalyzeSensitivity(posts []ScoredPost) SensitivityResult {
	var result SensitivityResult
	if len(posts) == 0 {
		return result
	}

	for _, attr := range Attributes {
		groups := c.Buckets.groupBy(posts, attr, func(p *ScoredPost) float64 { return p.EngagementScore })

		var (
			qualifying int
			bestValue  string
			bestAvg    float64
			worstAvg   float64
		)
		for _, g := range groups {
			if g.count < c.Sensitivity.MinGroupSize {
				continue
			}
			avg := mean(g.scores)
			if qualifying == 0 {
				bestValue, bestAvg, worstAvg = g.value, avg, avg
			} else {
				// groups arrive sorted by value, so strict comparison keeps the lexical tie-break
				if avg > bestAvg {
					bestValue, bestAvg = g.value, avg
				}
				if avg < worstAvg {
					worstAvg = avg
				}
			}
			qualifying++
		}
		if qualifying < 2 {
			continue
		}

		result.Attributes = append(result.Attributes, Sensitivity{
			Attribute:   attr,
			Magnitude:   bestAvg - worstAvg,
			BestValue:   bestValue,
			BestAverage: bestAvg,
			Groups:      qualifying,
		})
	}
	return result
}
