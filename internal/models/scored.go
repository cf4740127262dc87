// internal/models/scored.go
package models

// ScoreBreakdown holds the five independent sub-scores, each in [0,100].
type ScoreBreakdown struct {
	Relevance     int `json:"relevance"`
	Engagement    int `json:"engagement"`
	AudienceMatch int `json:"audience"`
	PricingFit    int `json:"pricingFit"`
	Consistency   int `json:"consistency"`
}

// MatchTier is the coarse output bucket assigned from FinalScore.
type MatchTier string

const (
	TierA MatchTier = "A"
	TierB MatchTier = "B"
	TierC MatchTier = "C"
)

// Confidence labels how much the relevance signal can be trusted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ScoredCandidate is a CreatorProfile with its computed match scores.
// Constructed fresh per request, immutable once produced, never persisted.
type ScoredCandidate struct {
	Profile    CreatorProfile `json:"profile"`
	Breakdown  ScoreBreakdown `json:"scoreBreakdown"`
	FinalScore int            `json:"finalScore"`
	Tier       MatchTier      `json:"tier"`
	Confidence Confidence     `json:"confidence"`
}

// RankStats reports candidate counts for one request, for observability.
type RankStats struct {
	Scored   int `json:"scored"`
	Rejected int `json:"rejected"`
	Returned int `json:"returned"`
}
