// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

package analytics

import (
	"reflect"
	"strings"
	"testing"
)

// --- Test: Cadence ---

func TestCadence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		days     []int
		expected float64
	}{
		{"no posts", nil, 0},
		{"single post", []int{0}, 0},
		{"every ten days", []int{0, 10, 20, 30, 40, 50}, 0.7},
		{"daily", []int{0, 1, 2, 3, 4, 5, 6, 7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			specs := make([]postSpec, len(tt.days))
			for i, d := range tt.days {
				specs[i] = postSpec{platform: "instagram", likes: 1, reach: 10, day: d}
			}
			got := Cadence(scoredPosts(specs))
			if !approxEqual(got, tt.expected) {
				t.Errorf("Cadence() = %f, want %f", got, tt.expected)
			}
		})
	}
}

// --- Test: GenerateRecommendations ---

func TestGenerateRecommendations_ZeroPosts(t *testing.T) {
	t.Parallel()

	recs := DefaultConfig().GenerateRecommendations(RecommendationInput{})
	if len(recs) != 0 {
		t.Errorf("expected no recommendations for zero posts, got %d", len(recs))
	}
}

func TestGenerateRecommendations_LowCadenceAlwaysHighFrequency(t *testing.T) {
	t.Parallel()

	specs := make([]postSpec, 6)
	for i := range specs {
		specs[i] = postSpec{platform: "instagram", likes: 5, reach: 100, day: i * 10}
	}
	posts := scoredPosts(specs)

	cfg := DefaultConfig()
	recs := cfg.GenerateRecommendations(RecommendationInput{
		Patterns:    cfg.DetectPatterns(posts, 0),
		Sensitivity: cfg.AnalyzeSensitivity(posts),
		Cadence:     Cadence(posts),
		PostCount:   len(posts),
		MedianScore: MedianComposite(posts),
	})

	var found bool
	for _, r := range recs {
		if r.Type == TypeFrequency {
			found = true
			if r.Priority != PriorityHigh {
				t.Errorf("frequency priority = %s, want high", r.Priority)
			}
		}
	}
	if !found {
		t.Error("expected a frequency recommendation for 0.7 posts/week")
	}
}

// instagramLeadSpecs is 20 Instagram posts near 0.8 engagement followed by
// 5 Twitter posts near 0.2, all published in the evening.
func instagramLeadSpecs() []postSpec {
	specs := make([]postSpec, 0, 25)
	for i := 0; i < 20; i++ {
		specs = append(specs, postSpec{platform: "instagram", likes: 78 + int64(i%5), reach: 100, day: i, hour: 18, length: 80, hashtags: 2})
	}
	for i := 0; i < 5; i++ {
		specs = append(specs, postSpec{platform: "twitter", likes: 18 + int64(i), reach: 100, day: 20 + i, hour: 18, length: 80, hashtags: 2})
	}
	return specs
}

func TestGenerateRecommendations_InstagramScenario(t *testing.T) {
	t.Parallel()

	posts := scoredPosts(instagramLeadSpecs())
	cfg := DefaultConfig()
	patterns := cfg.DetectPatterns(posts, 20)

	entry, ok := patterns.Entry(AttributePlatform)
	if !ok || entry.Value != "instagram" || entry.SupportCount < 8 {
		t.Fatalf("platform pattern = %+v, want instagram with support >= 8", entry)
	}

	recs := cfg.GenerateRecommendations(RecommendationInput{
		Patterns:    patterns,
		Sensitivity: cfg.AnalyzeSensitivity(posts),
		Cadence:     Cadence(posts),
		PostCount:   len(posts),
		MedianScore: MedianComposite(posts),
		Baselines:   cfg.PatternBaselines(posts, patterns),
	})

	var platform *Recommendation
	for i := range recs {
		if recs[i].Type == TypeCrossPlatform {
			platform = &recs[i]
		}
	}
	if platform == nil {
		t.Fatalf("expected a cross-platform recommendation, got %+v", recs)
	}
	if platform.Value != "instagram" || !strings.Contains(platform.Justification, "instagram") {
		t.Errorf("cross-platform recommendation does not reference instagram: %+v", platform)
	}
	if platform.Priority < PriorityHigh {
		t.Errorf("cross-platform priority = %s, want high or critical", platform.Priority)
	}
	if platform.Impact() <= 0 {
		t.Errorf("cross-platform impact = %f, want positive lift", platform.Impact())
	}
}

func TestPatternBaselines(t *testing.T) {
	t.Parallel()

	posts := scoredPosts(instagramLeadSpecs())
	cfg := DefaultConfig()
	baselines := cfg.PatternBaselines(posts, cfg.DetectPatterns(posts, 20))

	// Twitter composites: 0.6*engagement + 0.4 with a median engagement of 0.2.
	if got, ok := baselines[AttributePlatform]; !ok || !approxEqual(got, 0.52) {
		t.Errorf("platform baseline = %f (%v), want 0.52", got, ok)
	}
	// Every post is an evening post, so timing has nothing to compare against.
	if _, ok := baselines[AttributeTimeOfDay]; ok {
		t.Error("expected no timing baseline when every post shares the pattern value")
	}
}

func TestGenerateRecommendations_Ordering(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	recs := cfg.GenerateRecommendations(RecommendationInput{
		Patterns: PatternResult{
			SelectedCount: 10,
			Entries: []PatternEntry{
				{Attribute: AttributePlatform, Value: "instagram", SupportCount: 8, AverageScore: 0.9},
				{Attribute: AttributeTimeOfDay, Value: TimeEvening, SupportCount: 6, AverageScore: 0.65},
				{Attribute: AttributeContentLength, Value: LengthShort, SupportCount: 5, AverageScore: 0.3},
			},
		},
		Cadence:     0.5,
		PostCount:   20,
		MedianScore: 0.5,
	})

	want := []struct {
		typ      RecommendationType
		priority Priority
	}{
		{TypeCrossPlatform, PriorityCritical},
		{TypeFrequency, PriorityHigh},
		{TypeTiming, PriorityHigh},
		{TypeFormat, PriorityLow},
	}
	if len(recs) != len(want) {
		t.Fatalf("expected %d recommendations, got %d: %+v", len(want), len(recs), recs)
	}
	for i, w := range want {
		if recs[i].Type != w.typ || recs[i].Priority != w.priority {
			t.Errorf("recs[%d] = %s/%s, want %s/%s", i, recs[i].Type, recs[i].Priority, w.typ, w.priority)
		}
	}
}

func TestGenerateRecommendations_DedupeKeepsHigherPriority(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	recs := cfg.GenerateRecommendations(RecommendationInput{
		Patterns: PatternResult{
			SelectedCount: 10,
			Entries: []PatternEntry{
				{Attribute: AttributeHashtags, Value: HashtagsFew, SupportCount: 6, AverageScore: 0.5},
			},
		},
		Sensitivity: SensitivityResult{Attributes: []Sensitivity{
			{Attribute: AttributeHashtags, Magnitude: 0.4, BestValue: HashtagsMany, BestAverage: 0.5, Groups: 3},
		}},
		Cadence:     3,
		PostCount:   20,
		MedianScore: 0.5,
	})

	if len(recs) != 1 {
		t.Fatalf("expected 1 deduplicated recommendation, got %d: %+v", len(recs), recs)
	}
	if recs[0].Type != TypeHashtagStrategy || recs[0].Priority != PriorityHigh {
		t.Errorf("kept %s/%s, want hashtag-strategy/high", recs[0].Type, recs[0].Priority)
	}
	if recs[0].Value != HashtagsMany {
		t.Errorf("kept value %s, want the sensitivity item (%s)", recs[0].Value, HashtagsMany)
	}
}

func TestGenerateRecommendations_SensitivityThreshold(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	in := RecommendationInput{
		Sensitivity: SensitivityResult{Attributes: []Sensitivity{
			{Attribute: AttributeTimeOfDay, Magnitude: 0.15, BestValue: TimeMorning},
		}},
		Cadence:     2,
		PostCount:   10,
		MedianScore: 0.4,
	}
	if recs := cfg.GenerateRecommendations(in); len(recs) != 0 {
		t.Errorf("magnitude at threshold should not emit, got %+v", recs)
	}

	in.Sensitivity.Attributes[0].Magnitude = 0.2
	recs := cfg.GenerateRecommendations(in)
	if len(recs) != 1 || recs[0].Type != TypeAudienceTargeting || recs[0].Priority != PriorityMedium {
		t.Errorf("expected one medium audience-targeting item, got %+v", recs)
	}
}

func TestGenerateRecommendations_ZeroMedian(t *testing.T) {
	t.Parallel()

	recs := DefaultConfig().GenerateRecommendations(RecommendationInput{
		Patterns: PatternResult{Entries: []PatternEntry{
			{Attribute: AttributePlatform, Value: "instagram", SupportCount: 3, AverageScore: 0.1},
		}},
		Cadence:   2,
		PostCount: 3,
	})
	if len(recs) != 1 || recs[0].Priority != PriorityCritical {
		t.Errorf("expected critical item against zero median, got %+v", recs)
	}
}

func TestGenerateRecommendations_Deterministic(t *testing.T) {
	t.Parallel()

	posts := scoredPosts(instagramTwitterSpecs())
	cfg := DefaultConfig()
	in := RecommendationInput{
		Patterns:    cfg.DetectPatterns(posts, 0),
		Sensitivity: cfg.AnalyzeSensitivity(posts),
		Cadence:     Cadence(posts),
		PostCount:   len(posts),
		MedianScore: MedianComposite(posts),
	}

	first := cfg.GenerateRecommendations(in)
	second := cfg.GenerateRecommendations(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("regeneration changed output:\n%+v\n%+v", first, second)
	}
}

// --- Test: Types ---

func TestRecommendationType_ClosedSet(t *testing.T) {
	t.Parallel()

	constructors := []func(Priority, string, string) Recommendation{
		NewTopicRecommendation,
		NewFormatRecommendation,
		NewTimingRecommendation,
		NewFrequencyRecommendation,
		NewAudienceTargetingRecommendation,
		NewHashtagStrategyRecommendation,
		NewCollaborationRecommendation,
		NewMonetizationRecommendation,
		NewCrossPlatformRecommendation,
		NewRepurposingRecommendation,
		NewEngagementTacticRecommendation,
	}

	seen := make(map[string]bool)
	for _, build := range constructors {
		r := build(PriorityLow, "t", "j")
		name := r.Type.String()
		if name == "unknown" || seen[name] {
			t.Errorf("constructor produced invalid or duplicate type %q", name)
		}
		seen[name] = true

		var decoded RecommendationType
		if err := decoded.UnmarshalText([]byte(name)); err != nil || decoded != r.Type {
			t.Errorf("UnmarshalText(%q) = %v, %v", name, decoded, err)
		}
	}
	if len(seen) != int(numRecommendationTypes) {
		t.Errorf("expected %d types, got %d", numRecommendationTypes, len(seen))
	}

	if _, err := RecommendationType(200).MarshalText(); err == nil {
		t.Error("expected error marshaling out-of-range type")
	}
}

func TestStrengthPointsAndSuggestions(t *testing.T) {
	t.Parallel()

	patterns := PatternResult{
		SelectedCount: 10,
		Entries: []PatternEntry{
			{Attribute: AttributePlatform, Value: "instagram", SupportCount: 8, AverageScore: 0.6},
			{Attribute: AttributeHashtags, Value: HashtagsNone, SupportCount: 5, AverageScore: 0.2},
		},
	}
	points := StrengthPoints(patterns, 0.4)
	if len(points) != 1 || !strings.Contains(points[0], "instagram") {
		t.Errorf("StrengthPoints() = %v", points)
	}

	recs := []Recommendation{
		NewTimingRecommendation(PriorityHigh, "Schedule posts in the evening", ""),
		NewFormatRecommendation(PriorityLow, "Favor short-form content", ""),
	}
	suggestions := ImprovementSuggestions(recs)
	if len(suggestions) != 1 || suggestions[0] != "Schedule posts in the evening" {
		t.Errorf("ImprovementSuggestions() = %v", suggestions)
	}
}
