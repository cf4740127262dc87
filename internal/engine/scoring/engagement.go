// internal/engine/scoring/engagement.go
package scoring

import "creator-match/internal/models"

// rateBand is one ordered (minRate, score) rule. Bands are evaluated top
// down; the first band whose threshold the rate meets wins.
type rateBand struct {
	minRate float64
	score   int
}

// ratioAdjustment is one ordered views-to-followers ratio rule.
type ratioAdjustment struct {
	minRatio float64
	delta    int
}

// EngagementScorer scores engagement-rate percentage through tiered bands,
// then applies account-size adjustments.
type EngagementScorer struct {
	bands           []rateBand
	absentScore     int
	megaFollowers   int64
	megaPenalty     int
	smallFollowers  int64
	smallMinRate    float64
	smallBonus      int
	ratioRules      []ratioAdjustment
	lowRatioCutoff  float64
	lowRatioPenalty int
}

func NewEngagementScorer() *EngagementScorer {
	return &EngagementScorer{
		bands: []rateBand{
			{10, 100},
			{8, 95},
			{6, 88},
			{4, 75},
			{3, 65},
			{2, 52},
			{1, 38},
			{0, 22}, // any nonzero rate below 1
		},
		absentScore:    20,
		megaFollowers:  1_000_000,
		megaPenalty:    35,
		smallFollowers: 100_000,
		smallMinRate:   4,
		smallBonus:     10,
		ratioRules: []ratioAdjustment{
			{0.5, 12},
			{0.3, 8},
			{0.1, 4},
		},
		lowRatioCutoff:  0.02,
		lowRatioPenalty: 10,
	}
}

func (e *EngagementScorer) Score(p *models.CreatorProfile) int {
	score := e.baseScore(p)

	// Very large accounts with no engagement data are likely inactive or
	// inorganic.
	if p.Followers >= e.megaFollowers && !e.hasRate(p) {
		score -= e.megaPenalty
	}

	// Small accounts with strong engagement carry an authenticity signal.
	if p.Followers > 0 && p.Followers <= e.smallFollowers && e.hasRate(p) && p.EngagementRate >= e.smallMinRate {
		score += e.smallBonus
	}

	if p.Followers > 0 && p.AvgViews > 0 {
		score += e.ratioDelta(float64(p.AvgViews) / float64(p.Followers))
	}

	return clamp(score)
}

func (e *EngagementScorer) hasRate(p *models.CreatorProfile) bool {
	return p.HasEngagement && p.EngagementRate > 0
}

func (e *EngagementScorer) baseScore(p *models.CreatorProfile) int {
	if !e.hasRate(p) {
		return e.absentScore
	}

	for _, band := range e.bands {
		if p.EngagementRate >= band.minRate && p.EngagementRate > 0 {
			return band.score
		}
	}
	return e.absentScore
}

func (e *EngagementScorer) ratioDelta(ratio float64) int {
	for _, rule := range e.ratioRules {
		if ratio >= rule.minRatio {
			return rule.delta
		}
	}
	if ratio < e.lowRatioCutoff {
		return -e.lowRatioPenalty
	}
	return 0
}
