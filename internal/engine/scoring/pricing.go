// internal/engine/scoring/pricing.go
package scoring

import (
	"strings"

	"creator-match/internal/engine/fieldparse"
	"creator-match/internal/models"
)

// priceBucket is one ordered (maxValue, score) rule.
type priceBucket struct {
	max   float64
	score int
}

// PricingScorer scores the candidate's quoted price against the campaign
// budget when both are known, falling back to tier inference or absolute
// price brackets.
type PricingScorer struct {
	tierScores   map[string]int
	unknownTier  int
	ratioBuckets []priceBucket // price-to-budget ratio
	ratioWorst   int
	absBuckets   []priceBucket // absolute INR price
	absWorst     int
	contactBonus int
}

func NewPricingScorer() *PricingScorer {
	return &PricingScorer{
		// When price is unknown, cheaper tiers are the safer bet.
		tierScores: map[string]int{
			"mega":  30,
			"macro": 45,
			"mid":   55,
			"micro": 65,
			"nano":  75,
		},
		unknownTier: 50,
		ratioBuckets: []priceBucket{
			{0.5, 100},
			{0.8, 90},
			{1.0, 80},
			{1.3, 60},
			{2.0, 35},
		},
		ratioWorst: 10,
		absBuckets: []priceBucket{
			{5_000, 80},
			{25_000, 70},
			{100_000, 55},
			{500_000, 40},
			{1_000_000, 30},
		},
		absWorst:     25,
		contactBonus: 5,
	}
}

func (s *PricingScorer) Score(p *models.CreatorProfile, sig RequestSignals) int {
	price, hasPrice := fieldparse.ParsePrice(p.PriceRaw)

	var score int
	switch {
	case !hasPrice:
		score = s.tierScore(p.TierLabel)
	case sig.HasBudget && sig.Budget > 0:
		score = bucketScore(s.ratioBuckets, price/sig.Budget, s.ratioWorst)
	default:
		score = bucketScore(s.absBuckets, price, s.absWorst)
	}

	// Any contact channel lowers negotiation friction.
	if p.HasContact() {
		score += s.contactBonus
	}

	return clamp(score)
}

func (s *PricingScorer) tierScore(tierLabel string) int {
	if score, ok := s.tierScores[strings.ToLower(strings.TrimSpace(tierLabel))]; ok {
		return score
	}
	return s.unknownTier
}

func bucketScore(buckets []priceBucket, value float64, worst int) int {
	for _, b := range buckets {
		if value <= b.max {
			return b.score
		}
	}
	return worst
}
