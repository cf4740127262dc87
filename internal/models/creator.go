// internal/models/creator.go
package models

// CreatorProfile is one candidate sourced from the vector index metadata.
// Every field is optional; scoring tolerates arbitrarily sparse profiles.
type CreatorProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Handle     string `json:"handle"`
	ProfileURL string `json:"profileUrl"`

	Niche     string `json:"niche"`
	BrandFit  string `json:"brandFit"`
	Vibe      string `json:"vibe"`
	TierLabel string `json:"followerTier"`
	Location  string `json:"location"`
	Gender    string `json:"gender"`

	Followers      int64   `json:"followers"`
	AvgViews       int64   `json:"avgViews"`
	EngagementRate float64 `json:"engagementRate"`
	HasEngagement  bool    `json:"-"`

	GenderSplit      string `json:"genderSplit"`
	GeoSplit         string `json:"geoSplit"`
	AgeConcentration string `json:"ageConcentration"`

	PriceRaw      string `json:"priceRaw"`
	PastCampaigns string `json:"pastCampaigns"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`

	// Similarity is the raw score the vector index returned for the
	// current query. Higher means more similar.
	Similarity float64 `json:"similarity"`
}

// HasContact reports whether any contact channel is present.
func (p *CreatorProfile) HasContact() bool {
	return p.Email != "" || p.Phone != ""
}

// SearchableText concatenates the descriptive fields used for keyword
// category extraction.
func (p *CreatorProfile) SearchableText() string {
	return p.Niche + " " + p.BrandFit + " " + p.Vibe
}
