// internal/engine/present/narrative.go
package present

import (
	"fmt"
	"strings"

	"creator-match/internal/models"
)

// EmptyResultSentinel is emitted when no candidates survive. Downstream
// prompt instructions key off this exact string, so it must never be
// paraphrased.
const EmptyResultSentinel = "\n[No matching influencers found in the database.]"

// Narrative renders the ranked list as a labeled text block for direct
// inclusion in a language-model prompt.
func Narrative(candidates []models.ScoredCandidate) string {
	if len(candidates) == 0 {
		return EmptyResultSentinel
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n--- TOP %d MATCHING INFLUENCERS FROM DATABASE ---\n", len(candidates))

	for i, c := range candidates {
		fmt.Fprintf(&b, "\n═══ INFLUENCER %d ═══\n", i+1)
		writeCandidate(&b, c)
	}

	b.WriteString("\n--- END OF DATABASE RESULTS ---\n")
	return b.String()
}

func writeCandidate(b *strings.Builder, c models.ScoredCandidate) {
	p := c.Profile

	writeField(b, "Name", p.Name)
	fmt.Fprintf(b, "Match Score: %d/100 (Tier %s, %s confidence)\n", c.FinalScore, c.Tier, c.Confidence)
	writeField(b, "Instagram", p.ProfileURL)
	writeField(b, "Location", p.Location)
	writeField(b, "Gender", p.Gender)
	writeField(b, "Type/Tier", p.TierLabel)
	writeField(b, "Niche", p.Niche)
	writeField(b, "Brand Fit", p.BrandFit)
	writeField(b, "Vibe/Style", p.Vibe)
	if p.Followers > 0 {
		fmt.Fprintf(b, "Followers: %d\n", p.Followers)
	}
	writeField(b, "Follower Tier", p.TierLabel)
	if p.AvgViews > 0 {
		fmt.Fprintf(b, "Avg Views: %d\n", p.AvgViews)
	}
	if p.HasEngagement {
		fmt.Fprintf(b, "Engagement Rate: %.2f%%\n", p.EngagementRate)
	}
	writeField(b, "M/F Split", p.GenderSplit)
	writeField(b, "India Split", p.GeoSplit)
	writeField(b, "Age Concentration", p.AgeConcentration)
	writeField(b, "Past Campaigns", p.PastCampaigns)
	writeField(b, "Commercials", p.PriceRaw)
	writeField(b, "Phone", p.Phone)
	writeField(b, "Email", p.Email)
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
