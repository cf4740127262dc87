// internal/engine/scoring/scoring.go
package scoring

import (
	"math"
	"strings"

	"creator-match/internal/engine/fieldparse"
	"creator-match/internal/engine/query"
	"creator-match/internal/engine/taxonomy"
	"creator-match/internal/models"
)

// Sub-score weights. FinalScore = round(weighted sum), clamped to 100.
const (
	WeightRelevance     = 0.35
	WeightEngagement    = 0.25
	WeightAudienceMatch = 0.20
	WeightPricingFit    = 0.10
	WeightConsistency   = 0.10
)

// Tier and confidence cutoffs.
const (
	tierACutoff          = 80
	tierBCutoff          = 60
	confidenceHighCutoff = 50
	confidenceMedCutoff  = 30
)

// Scorer computes the full ScoreBreakdown for candidates of one request.
// Each threshold table lives in its own strategy object so the numbers can
// be tuned without touching control flow.
type Scorer struct {
	relevance   *RelevanceScorer
	engagement  *EngagementScorer
	audience    *AudienceScorer
	pricing     *PricingScorer
	consistency *ConsistencyScorer
}

// NewScorer builds a Scorer with the default strategy tables.
func NewScorer() *Scorer {
	return &Scorer{
		relevance:   NewRelevanceScorer(),
		engagement:  NewEngagementScorer(),
		audience:    NewAudienceScorer(),
		pricing:     NewPricingScorer(),
		consistency: NewConsistencyScorer(),
	}
}

// RequestSignals holds the per-request inputs derived once from the
// QueryContext and shared by every candidate's scoring pass.
type RequestSignals struct {
	BrandCategories map[string]bool
	QueryCategories map[string]bool
	HasBrandContext bool
	Budget          float64
	HasBudget       bool
	Analysis        query.Analysis
}

// DeriveSignals extracts the shared scoring inputs from a QueryContext.
func DeriveSignals(qc models.QueryContext) RequestSignals {
	combined := qc.Brief
	if qc.Context != "" {
		combined += ". " + qc.Context
	}

	sig := RequestSignals{
		QueryCategories: taxonomy.ExtractCategories(combined),
		Analysis:        query.Analyze(combined),
	}

	if list := extractBrandFitList(qc.BrandContext); list != "" {
		sig.HasBrandContext = true
		sig.BrandCategories = taxonomy.ExtractCategories(list)
	}

	if budget, ok := fieldparse.ExtractBudget(qc.BrandContext); ok {
		sig.Budget, sig.HasBudget = budget, true
	} else if budget, ok := fieldparse.ExtractBudget(combined); ok {
		sig.Budget, sig.HasBudget = budget, true
	}

	return sig
}

// extractBrandFitList pulls the category list out of a labeled
// "brand_fit: a, b, c" sub-string. The whole remainder of the line is the
// list; taxonomy expansion catches verbose phrasing.
func extractBrandFitList(brandContext string) string {
	lower := strings.ToLower(brandContext)
	idx := strings.Index(lower, "brand_fit:")
	if idx < 0 {
		return ""
	}

	rest := brandContext[idx+len("brand_fit:"):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.TrimSpace(rest)
}

// Score computes the breakdown, final score, tier and confidence for one
// candidate. Pure and total: it never fails, however sparse the profile.
func (s *Scorer) Score(profile models.CreatorProfile, sig RequestSignals) models.ScoredCandidate {
	breakdown := models.ScoreBreakdown{
		Relevance:     s.relevance.Score(&profile, sig),
		Engagement:    s.engagement.Score(&profile),
		AudienceMatch: s.audience.Score(&profile, sig),
		PricingFit:    s.pricing.Score(&profile, sig),
		Consistency:   s.consistency.Score(&profile),
	}

	final := clamp(int(math.Round(
		float64(breakdown.Relevance)*WeightRelevance +
			float64(breakdown.Engagement)*WeightEngagement +
			float64(breakdown.AudienceMatch)*WeightAudienceMatch +
			float64(breakdown.PricingFit)*WeightPricingFit +
			float64(breakdown.Consistency)*WeightConsistency)))

	return models.ScoredCandidate{
		Profile:    profile,
		Breakdown:  breakdown,
		FinalScore: final,
		Tier:       tierFor(final),
		Confidence: confidenceFor(breakdown.Relevance),
	}
}

func tierFor(finalScore int) models.MatchTier {
	switch {
	case finalScore >= tierACutoff:
		return models.TierA
	case finalScore >= tierBCutoff:
		return models.TierB
	default:
		return models.TierC
	}
}

func confidenceFor(relevance int) models.Confidence {
	switch {
	case relevance >= confidenceHighCutoff:
		return models.ConfidenceHigh
	case relevance >= confidenceMedCutoff:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// clamp bounds a score to [0,100].
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
