// internal/strategy/strategy.go
package strategy

import (
	"fmt"
	"math"

	"creator-match/internal/models"
)

// Influencer tier cutoffs by follower count.
const (
	celebrityFollowers = 1_000_000
	macroFollowers     = 100_000
	microFollowers     = 10_000
)

// ClassifyTier derives the influencer scale tier from follower count.
func ClassifyTier(followers int64) string {
	switch {
	case followers >= celebrityFollowers:
		return "celebrity"
	case followers >= macroFollowers:
		return "macro"
	case followers >= microFollowers:
		return "micro"
	default:
		return "nano"
	}
}

// TierDistribution groups candidates by scale tier.
func TierDistribution(profiles []models.CreatorProfile) map[string][]models.CreatorProfile {
	tiers := map[string][]models.CreatorProfile{
		"nano": {}, "micro": {}, "macro": {}, "celebrity": {},
	}
	for _, p := range profiles {
		tier := ClassifyTier(p.Followers)
		tiers[tier] = append(tiers[tier], p)
	}
	return tiers
}

// TierAllocation is one tier's share of the campaign budget.
type TierAllocation struct {
	Pct    int     `json:"pct"`
	Amount float64 `json:"amount"`
}

// BudgetPlan is the INR budget split across available tiers.
type BudgetPlan struct {
	TotalBudget float64                   `json:"total_budget"`
	Currency    string                    `json:"currency"`
	Allocation  map[string]TierAllocation `json:"allocation"`
	CostPerTier map[string]string         `json:"cost_per_tier"`
}

// AllocateBudget splits the budget across the tiers actually present in the
// candidate set. Heavier tiers absorb most of the spend when available.
func AllocateBudget(budget float64, tiers map[string][]models.CreatorProfile) BudgetPlan {
	if budget <= 0 {
		budget = 300_000 // midpoint of the default ₹1-5 Lakh bracket
	}

	hasCeleb := len(tiers["celebrity"]) > 0
	hasMacro := len(tiers["macro"]) > 0

	allocation := map[string]TierAllocation{}
	assign := func(tier string, pct int) {
		allocation[tier] = TierAllocation{Pct: pct, Amount: math.Round(budget * float64(pct) / 100)}
	}

	switch {
	case hasCeleb:
		assign("celebrity", 40)
		assign("macro", 25)
		assign("micro", 20)
		assign("nano", 10)
		assign("contingency", 5)
	case hasMacro:
		assign("macro", 35)
		assign("micro", 35)
		assign("nano", 20)
		assign("contingency", 10)
	default:
		assign("micro", 45)
		assign("nano", 40)
		assign("contingency", 15)
	}

	return BudgetPlan{
		TotalBudget: budget,
		Currency:    "INR",
		Allocation:  allocation,
		CostPerTier: map[string]string{
			"nano":      "₹2,000 – ₹15,000 per post",
			"micro":     "₹15,000 – ₹75,000 per post",
			"macro":     "₹75,000 – ₹3,00,000 per post",
			"celebrity": "₹3,00,000 – ₹15,00,000+ per post",
		},
	}
}

// KPIForecast estimates reach, engagement and cost metrics for a candidate
// set against a budget. All factors are industry heuristics.
type KPIForecast struct {
	EstimatedReach       int64   `json:"estimated_reach"`
	EstimatedImpressions int64   `json:"estimated_impressions"`
	EstimatedEngagements int64   `json:"estimated_engagements"`
	EstimatedClicks      int64   `json:"estimated_clicks"`
	EstimatedConversions int64   `json:"estimated_conversions"`
	AvgEngagementRate    float64 `json:"avg_engagement_rate"`
	CPM                  float64 `json:"cpm"`
	CPE                  float64 `json:"cpe"`
	CPC                  float64 `json:"cpc"`
}

// ForecastKPIs projects campaign outcomes from follower counts and
// engagement rates. Missing engagement rates assume the 2% industry average.
func ForecastKPIs(profiles []models.CreatorProfile, budget float64) KPIForecast {
	if len(profiles) == 0 {
		return KPIForecast{}
	}

	var totalFollowers int64
	var erSum float64
	for _, p := range profiles {
		totalFollowers += p.Followers
		if p.HasEngagement && p.EngagementRate > 0 {
			erSum += p.EngagementRate
		} else {
			erSum += 2
		}
	}
	avgER := erSum / float64(len(profiles))

	reach := int64(math.Round(float64(totalFollowers) * 0.25))
	impressions := int64(math.Round(float64(reach) * 2.5))
	engagements := int64(math.Round(float64(reach) * avgER / 100))
	clicks := int64(math.Round(float64(engagements) * 0.15))
	conversions := int64(math.Round(float64(clicks) * 0.03))

	f := KPIForecast{
		EstimatedReach:       reach,
		EstimatedImpressions: impressions,
		EstimatedEngagements: engagements,
		EstimatedClicks:      clicks,
		EstimatedConversions: conversions,
		AvgEngagementRate:    math.Round(avgER*100) / 100,
	}

	if budget > 0 && impressions > 0 {
		f.CPM = math.Round(budget / float64(impressions) * 1000)
	}
	if budget > 0 && engagements > 0 {
		f.CPE = math.Round(budget / float64(engagements))
	}
	if budget > 0 && clicks > 0 {
		f.CPC = math.Round(budget / float64(clicks))
	}

	return f
}

// Risk is one flagged campaign concern with a suggested mitigation.
type Risk struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

// AssessRisks flags engagement quality, budget mismatch, niche
// concentration, compliance and outreach feasibility concerns.
func AssessRisks(profiles []models.CreatorProfile, budget float64) []Risk {
	risks := []Risk{}

	lowER := 0
	noContact := 0
	niches := map[string]bool{}
	for _, p := range profiles {
		if !p.HasEngagement || p.EngagementRate < 1 {
			lowER++
		}
		if !p.HasContact() {
			noContact++
		}
		if p.Niche != "" {
			niches[p.Niche] = true
		}
	}

	if len(profiles) > 0 && float64(lowER) > float64(len(profiles))*0.3 {
		risks = append(risks, Risk{
			Category:    "Engagement Quality",
			Severity:    "high",
			Description: fmt.Sprintf("%d of %d influencers have engagement rates below 1%% — potential fake followers.", lowER, len(profiles)),
			Mitigation:  "Request audience audit reports before finalizing contracts.",
		})
	}

	tiers := TierDistribution(profiles)
	if len(tiers["celebrity"]) > 0 && budget > 0 && budget < 500_000 {
		risks = append(risks, Risk{
			Category:    "Budget Mismatch",
			Severity:    "high",
			Description: "Celebrity influencers selected for a budget-tier campaign. ROI may be negative.",
			Mitigation:  "Consider replacing celebrity tier with multiple micro-influencers.",
		})
	}

	if len(niches) <= 1 && len(profiles) > 5 {
		risks = append(risks, Risk{
			Category:    "Niche Concentration",
			Severity:    "medium",
			Description: "All influencers are in the same niche. Limited audience diversity.",
			Mitigation:  "Add 2-3 adjacent niche influencers for broader reach.",
		})
	}

	risks = append(risks, Risk{
		Category:    "Regulatory Compliance",
		Severity:    "low",
		Description: "All sponsored content must be clearly disclosed per ASCI guidelines.",
		Mitigation:  "Include #ad or #sponsored in all paid posts. Use platform-native paid partnership tags.",
	})

	if len(profiles) > 0 && float64(noContact) > float64(len(profiles))*0.5 {
		risks = append(risks, Risk{
			Category:    "Outreach Feasibility",
			Severity:    "medium",
			Description: fmt.Sprintf("%d influencers lack contact information. Outreach may require DM-first approach.", noContact),
			Mitigation:  "Prioritize influencers with available contact details for faster campaign launch.",
		})
	}

	return risks
}
