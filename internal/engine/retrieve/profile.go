// internal/engine/retrieve/profile.go
package retrieve

import (
	"fmt"

	"creator-match/internal/engine/fieldparse"
	"creator-match/internal/models"
)

// ProfileFromMetadata builds a CreatorProfile from raw index metadata.
// Every field is optional; malformed numerics default rather than fail.
func ProfileFromMetadata(id string, similarity float64, meta map[string]interface{}) models.CreatorProfile {
	p := models.CreatorProfile{
		ID:         id,
		Similarity: similarity,

		Name:       metaString(meta, "name"),
		Handle:     metaString(meta, "handle"),
		ProfileURL: metaString(meta, "profile_link"),

		Niche:     metaString(meta, "niche"),
		BrandFit:  metaString(meta, "brand_fit"),
		Vibe:      metaString(meta, "vibe"),
		TierLabel: metaString(meta, "follower_tier"),
		Location:  metaString(meta, "location"),
		Gender:    metaString(meta, "gender"),

		GenderSplit:      metaString(meta, "mf_split"),
		GeoSplit:         metaString(meta, "india_split"),
		AgeConcentration: metaString(meta, "age_concentration"),

		PriceRaw:      metaString(meta, "commercials"),
		PastCampaigns: metaString(meta, "past_campaigns"),
		Email:         metaString(meta, "email"),
		Phone:         metaString(meta, "contact_no"),
	}

	p.Followers = metaCount(meta, "followers")
	p.AvgViews = metaCount(meta, "average_views")

	if rate, ok := fieldparse.ParseRate(metaString(meta, "engagement_rate")); ok {
		p.EngagementRate = rate
		p.HasEngagement = true
	} else if v, ok := metaFloat(meta, "engagement_rate"); ok {
		p.EngagementRate = v
		p.HasEngagement = true
	}

	return p
}

func metaString(meta map[string]interface{}, key string) string {
	if v, ok := meta[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func metaFloat(meta map[string]interface{}, key string) (float64, bool) {
	switch v := meta[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func metaCount(meta map[string]interface{}, key string) int64 {
	if v, ok := metaFloat(meta, key); ok {
		if v < 0 {
			return 0
		}
		return int64(v)
	}
	if s := metaString(meta, key); s != "" {
		return fieldparse.ParseCount(s)
	}
	return 0
}

// String renders a short debug description; kept for log readability.
func (m Match) String() string {
	return fmt.Sprintf("match{id=%s score=%.3f}", m.ID, m.Score)
}
