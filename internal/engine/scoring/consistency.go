// internal/engine/scoring/consistency.go
package scoring

import "creator-match/internal/models"

// ConsistencyScorer rewards profiles whose metrics look organic and whose
// descriptive fields are filled in.
type ConsistencyScorer struct {
	base int

	organicRateMin float64
	organicRateMax float64
	organicBonus   int
	viralBonus     int

	fieldBonus    int
	fieldBonusCap int

	healthyRatioMin float64
	healthyRatioMax float64
	healthyBonus    int
	lowRatioBonus   int
}

func NewConsistencyScorer() *ConsistencyScorer {
	return &ConsistencyScorer{
		base:            40,
		organicRateMin:  1,
		organicRateMax:  15,
		organicBonus:    25,
		viralBonus:      10, // spikes above the organic band may be one-off
		fieldBonus:      3,
		fieldBonusCap:   24,
		healthyRatioMin: 0.05,
		healthyRatioMax: 0.60,
		healthyBonus:    11,
		lowRatioBonus:   3,
	}
}

func (c *ConsistencyScorer) Score(p *models.CreatorProfile) int {
	score := c.base

	if p.HasEngagement && p.EngagementRate > 0 {
		if p.EngagementRate >= c.organicRateMin && p.EngagementRate <= c.organicRateMax {
			score += c.organicBonus
		} else if p.EngagementRate > c.organicRateMax {
			score += c.viralBonus
		}
	}

	score += c.populatedFieldBonus(p)

	if p.Followers > 0 && p.AvgViews > 0 {
		ratio := float64(p.AvgViews) / float64(p.Followers)
		if ratio >= c.healthyRatioMin && ratio <= c.healthyRatioMax {
			score += c.healthyBonus
		} else if ratio > 0 && ratio < c.healthyRatioMin {
			score += c.lowRatioBonus
		}
	}

	return clamp(score)
}

func (c *ConsistencyScorer) populatedFieldBonus(p *models.CreatorProfile) int {
	fields := []bool{
		p.Niche != "",
		p.BrandFit != "",
		p.Vibe != "",
		p.Location != "",
		p.GenderSplit != "",
		p.AgeConcentration != "",
		p.GeoSplit != "",
		p.HasContact(),
	}

	bonus := 0
	for _, populated := range fields {
		if populated {
			bonus += c.fieldBonus
		}
	}
	if bonus > c.fieldBonusCap {
		bonus = c.fieldBonusCap
	}
	return bonus
}
