// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const week = 7 * 24 * time.Hour

// RecommendationInput bundles the evidence the generator works from.
type RecommendationInput struct {
	Patterns    PatternResult
	Sensitivity SensitivityResult

	// Cadence is the creator's posting rate in posts per week.
	Cadence float64

	// PostCount is the number of scored posts behind the evidence.
	PostCount int

	// MedianScore is the median composite score over all posts.
	MedianScore float64

	// Baselines holds, per pattern attribute, the median composite score of
	// the posts that do not carry the pattern value. Attributes without a
	// baseline are measured against MedianScore.
	Baselines map[Attribute]float64
}

// PatternBaselines returns, for each pattern entry, the median composite
// score of the posts whose value for the attribute is known and differs
// from the pattern value. Attributes where every such post matches the
// pattern are left out.
func (c *Config) PatternBaselines(posts []ScoredPost, patterns PatternResult) map[Attribute]float64 {
	baselines := make(map[Attribute]float64, len(patterns.Entries))
	for _, e := range patterns.Entries {
		var rest []float64
		for i := range posts {
			v, ok := c.Buckets.attributeValue(&posts[i], e.Attribute)
			if ok && v != e.Value {
				rest = append(rest, posts[i].CompositeScore)
			}
		}
		if len(rest) > 0 {
			baselines[e.Attribute] = median(rest)
		}
	}
	return baselines
}

// Cadence returns the posting rate in posts per week: the number of gaps
// between posts divided by the weeks between the oldest and newest post.
// Fewer than two posts yield 0. Spans shorter than a day count as a day.
func Cadence(posts []ScoredPost) float64 {
	if len(posts) < 2 {
		return 0
	}
	oldest, newest := posts[0].PublishedAt(), posts[0].PublishedAt()
	for i := range posts[1:] {
		at := posts[i+1].PublishedAt()
		if at.Before(oldest) {
			oldest = at
		}
		if at.After(newest) {
			newest = at
		}
	}
	span := max(newest.Sub(oldest), 24*time.Hour)
	return float64(len(posts)-1) / (float64(span) / float64(week))
}

// GenerateRecommendations turns patterns, sensitivities and cadence into a
// ranked, deduplicated list of recommendations.
//
// Items are evaluated in the order platform, timing, format, hashtags,
// frequency, targeting. At most one item per type survives; the one with the
// higher priority (then impact, then earlier evaluation) wins. The result is
// ordered by priority, expected impact and evaluation order.
//
//nolint:gocritic // hugeParam: input is read-only
func (c *Config) GenerateRecommendations(in RecommendationInput) []Recommendation {
	if in.PostCount == 0 {
		return nil
	}

	var candidates []Recommendation
	add := func(r Recommendation) {
		r.seq = len(candidates)
		candidates = append(candidates, r)
	}

	for _, attr := range Attributes {
		if entry, ok := in.Patterns.Entry(attr); ok {
			baseline, against := in.MedianScore, "your median"
			if b, found := in.Baselines[attr]; found {
				baseline, against = b, "your other posts"
			}
			add(c.patternRecommendation(entry, baseline, against))
		}
	}

	if in.Cadence < c.Recommendation.CadenceFloor {
		add(c.frequencyRecommendation(in.Cadence))
	}

	for _, s := range in.Sensitivity.Attributes {
		if s.Magnitude > c.Recommendation.SensitivityThreshold {
			add(c.sensitivityRecommendation(s))
		}
	}

	return rankRecommendations(dedupeByType(candidates))
}

// priorityForRatio maps a pattern-to-baseline score ratio onto a priority.
func (r RecommendationConfig) priorityForRatio(ratio float64) Priority {
	switch {
	case ratio >= r.CriticalRatio:
		return PriorityCritical
	case ratio >= r.HighRatio:
		return PriorityHigh
	case ratio >= r.MediumRatio:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// scoreRatio divides average by median. A zero median with a positive
// average is treated as unbounded lift.
func scoreRatio(average, medianScore float64) float64 {
	if medianScore <= 0 {
		if average > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return average / medianScore
}

func (c *Config) patternRecommendation(e PatternEntry, baseline float64, against string) Recommendation {
	ratio := scoreRatio(e.AverageScore, baseline)
	priority := c.Recommendation.priorityForRatio(ratio)

	impact := ratio - 1
	if math.IsInf(ratio, 1) {
		impact = e.AverageScore
	}
	impact = math.Max(impact, 0)

	lift := describeLift(e.AverageScore, baseline, against)
	support := fmt.Sprintf("%d of your top posts", e.SupportCount)

	var r Recommendation
	switch e.Attribute {
	case AttributePlatform:
		r = NewCrossPlatformRecommendation(priority,
			fmt.Sprintf("Lead with %s and cross-promote from other platforms", e.Value),
			fmt.Sprintf("%s are on %s, scoring %s.", support, e.Value, lift))
	case AttributeTimeOfDay:
		r = NewTimingRecommendation(priority,
			fmt.Sprintf("Schedule posts in the %s", e.Value),
			fmt.Sprintf("%s went out in the %s, scoring %s.", support, e.Value, lift))
	case AttributeContentLength:
		r = NewFormatRecommendation(priority,
			fmt.Sprintf("Favor %s-form content", e.Value),
			fmt.Sprintf("%s are %s-form, scoring %s.", support, e.Value, lift))
	default:
		r = NewHashtagStrategyRecommendation(priority,
			fmt.Sprintf("Use %s hashtags per post", hashtagPhrase(e.Value)),
			fmt.Sprintf("%s use %s hashtags, scoring %s.", support, hashtagPhrase(e.Value), lift))
	}
	return r.WithImpact(impact).WithEvidence(e.Attribute, e.Value)
}

func (c *Config) frequencyRecommendation(cadence float64) Recommendation {
	floor := c.Recommendation.CadenceFloor
	return NewFrequencyRecommendation(PriorityHigh,
		fmt.Sprintf("Post at least %s per week", postsPhrase(floor)),
		fmt.Sprintf("You currently post %.1f times per week, below the recommended %g.", cadence, floor),
	).WithImpact(math.Max(floor-cadence, 0))
}

func (c *Config) sensitivityRecommendation(s Sensitivity) Recommendation {
	priority := PriorityMedium
	if s.Magnitude >= 2*c.Recommendation.SensitivityThreshold {
		priority = PriorityHigh
	}

	justification := fmt.Sprintf("Engagement varies by %.2f across %s groups; %s performs best at %.2f.",
		s.Magnitude, attributeLabel(s.Attribute), s.BestValue, s.BestAverage)

	var r Recommendation
	if s.Attribute == AttributeHashtags {
		r = NewHashtagStrategyRecommendation(priority,
			fmt.Sprintf("Your audience responds to %s hashtags", hashtagPhrase(s.BestValue)),
			justification)
	} else {
		r = NewAudienceTargetingRecommendation(priority,
			fmt.Sprintf("Target the audience that responds to %s %s", attributeLabel(s.Attribute), s.BestValue),
			justification)
	}
	return r.WithImpact(s.Magnitude).WithEvidence(s.Attribute, s.BestValue)
}

// dedupeByType keeps one recommendation per type.
func dedupeByType(candidates []Recommendation) []Recommendation {
	kept := make(map[RecommendationType]int, len(candidates))
	out := make([]Recommendation, 0, len(candidates))
	for _, r := range candidates {
		at, ok := kept[r.Type]
		if !ok {
			kept[r.Type] = len(out)
			out = append(out, r)
			continue
		}
		current := &out[at]
		if r.Priority > current.Priority || (r.Priority == current.Priority && r.Impact() > current.Impact()) {
			out[at] = r
		}
	}
	return out
}

// rankRecommendations sorts by priority desc, impact desc, evaluation order.
func rankRecommendations(recs []Recommendation) []Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := &recs[i], &recs[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Impact() != b.Impact() {
			return a.Impact() > b.Impact()
		}
		return a.seq < b.seq
	})
	return recs
}

// StrengthPoints describes the pattern entries that beat the median.
func StrengthPoints(patterns PatternResult, medianScore float64) []string {
	var points []string
	for _, e := range patterns.Entries {
		if e.AverageScore < medianScore {
			continue
		}
		points = append(points, fmt.Sprintf("%d of your top %d posts share %s %s, scoring %s.",
			e.SupportCount, patterns.SelectedCount, attributeLabel(e.Attribute), e.Value,
			describeLift(e.AverageScore, medianScore, "your median")))
	}
	return points
}

// ImprovementSuggestions lists the titles of recommendations of at least
// Medium priority, in ranked order.
func ImprovementSuggestions(recs []Recommendation) []string {
	var out []string
	for i := range recs {
		if recs[i].Priority >= PriorityMedium {
			out = append(out, recs[i].Title)
		}
	}
	return out
}

func describeLift(average, reference float64, against string) string {
	if reference <= 0 {
		return fmt.Sprintf("%.2f where %s score zero", average, against)
	}
	pct := (average/reference - 1) * 100
	if pct >= 0 {
		return fmt.Sprintf("%.0f%% above %s", pct, against)
	}
	return fmt.Sprintf("%.0f%% below %s", -pct, against)
}

func attributeLabel(a Attribute) string {
	switch a {
	case AttributePlatform:
		return "platform"
	case AttributeTimeOfDay:
		return "posting time"
	case AttributeContentLength:
		return "content length"
	case AttributeHashtags:
		return "hashtag count"
	default:
		return a.String()
	}
}

func hashtagPhrase(bucket string) string {
	switch bucket {
	case HashtagsNone:
		return "no"
	case HashtagsFew:
		return "a few"
	case HashtagsMany:
		return "many"
	default:
		return bucket
	}
}

func postsPhrase(n float64) string {
	if n == 1 {
		return "once"
	}
	return fmt.Sprintf("%g times", n)
}
