// internal/engine/present/structured.go
package present

import (
	"creator-match/internal/engine/fieldparse"
	"creator-match/internal/models"
)

// StructuredCandidate is the nested API/UI representation of one match.
type StructuredCandidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Handle     string `json:"handle,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
	Location   string `json:"location,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Type       string `json:"type,omitempty"`
	Niche      string `json:"niche,omitempty"`
	BrandFit   string `json:"brandFit,omitempty"`
	Vibe       string `json:"vibe,omitempty"`

	Followers      int64   `json:"followers"`
	FollowerTier   string  `json:"followerTier,omitempty"`
	AvgViews       int64   `json:"avgViews"`
	EngagementRate float64 `json:"engagementRate"`

	Audience AudienceGroup `json:"audience"`
	Pricing  PricingGroup  `json:"pricing"`
	Contact  ContactGroup  `json:"contact"`
	Match    MatchGroup    `json:"match"`

	ScoreBreakdown models.ScoreBreakdown `json:"scoreBreakdown"`
}

type AudienceGroup struct {
	MalePct        *int   `json:"malePct,omitempty"`
	FemalePct      *int   `json:"femalePct,omitempty"`
	HomeCountryPct *int   `json:"homeCountryPct,omitempty"`
	AgeGroup       string `json:"ageGroup,omitempty"`
	RawGenderSplit string `json:"rawGenderSplit,omitempty"`
	RawGeoSplit    string `json:"rawGeoSplit,omitempty"`
}

type PricingGroup struct {
	QuotedPriceNumeric *float64 `json:"quotedPriceNumeric,omitempty"`
	Display            string   `json:"display,omitempty"`
	Raw                string   `json:"raw,omitempty"`
}

type ContactGroup struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type MatchGroup struct {
	Score      int               `json:"score"`
	Tier       models.MatchTier  `json:"tier"`
	Confidence models.Confidence `json:"confidence"`
}

// Structured renders the ranked list for programmatic consumers. An empty
// or all-rejected pool yields an empty (non-nil) slice.
func Structured(candidates []models.ScoredCandidate) []StructuredCandidate {
	out := make([]StructuredCandidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, structuredOne(c))
	}
	return out
}

func structuredOne(c models.ScoredCandidate) StructuredCandidate {
	p := c.Profile

	sc := StructuredCandidate{
		ID:             p.ID,
		Name:           p.Name,
		Handle:         p.Handle,
		ProfileURL:     p.ProfileURL,
		Location:       p.Location,
		Gender:         p.Gender,
		Type:           p.TierLabel,
		Niche:          p.Niche,
		BrandFit:       p.BrandFit,
		Vibe:           p.Vibe,
		Followers:      p.Followers,
		FollowerTier:   p.TierLabel,
		AvgViews:       p.AvgViews,
		EngagementRate: p.EngagementRate,
		Audience: AudienceGroup{
			AgeGroup:       p.AgeConcentration,
			RawGenderSplit: p.GenderSplit,
			RawGeoSplit:    p.GeoSplit,
		},
		Pricing: PricingGroup{Raw: p.PriceRaw},
		Contact: ContactGroup{Phone: p.Phone, Email: p.Email},
		Match: MatchGroup{
			Score:      c.FinalScore,
			Tier:       c.Tier,
			Confidence: c.Confidence,
		},
		ScoreBreakdown: c.Breakdown,
	}

	if male, female, ok := fieldparse.ParseSplitPair(p.GenderSplit); ok {
		sc.Audience.MalePct = &male
		sc.Audience.FemalePct = &female
	}
	if home, _, ok := fieldparse.ParseSplitPair(p.GeoSplit); ok {
		sc.Audience.HomeCountryPct = &home
	}
	if price, ok := fieldparse.ParsePrice(p.PriceRaw); ok {
		sc.Pricing.QuotedPriceNumeric = &price
		sc.Pricing.Display = p.PriceRaw
	}

	return sc
}
