// internal/engine/query/composer_test.go
package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		validate func(t *testing.T, a Analysis)
	}{
		{
			name: "niche and city",
			text: "food bloggers in Mumbai",
			validate: func(t *testing.T, a Analysis) {
				assert.Contains(t, a.Niches, "food")
				assert.Equal(t, []string{"mumbai"}, a.Cities)
			},
		},
		{
			name: "female gender words win over substring male",
			text: "skincare influencers for women",
			validate: func(t *testing.T, a Analysis) {
				assert.Equal(t, "female", a.Gender)
			},
		},
		{
			name: "male gender detected on word boundary",
			text: "grooming products for men",
			validate: func(t *testing.T, a Analysis) {
				assert.Equal(t, "male", a.Gender)
			},
		},
		{
			name: "men inside comments does not fire",
			text: "high engagement in comments",
			validate: func(t *testing.T, a Analysis) {
				assert.Equal(t, "", a.Gender)
			},
		},
		{
			name: "age range",
			text: "audience aged 18-24",
			validate: func(t *testing.T, a Analysis) {
				assert.True(t, a.HasAge)
				assert.Equal(t, 18, a.AgeMin)
				assert.Equal(t, 24, a.AgeMax)
			},
		},
		{
			name: "inverted age range ignored",
			text: "aged 34-21 somehow",
			validate: func(t *testing.T, a Analysis) {
				assert.False(t, a.HasAge)
			},
		},
		{
			name: "pan india phrasing",
			text: "campaign running pan-India",
			validate: func(t *testing.T, a Analysis) {
				assert.True(t, a.PanIndia)
			},
		},
		{
			name: "tier synonym small maps to nano",
			text: "small creators only",
			validate: func(t *testing.T, a Analysis) {
				assert.Equal(t, "nano", a.TierWord)
			},
		},
		{
			name: "first tier keyword wins",
			text: "micro or macro creators",
			validate: func(t *testing.T, a Analysis) {
				assert.Equal(t, "micro", a.TierWord)
			},
		},
		{
			name: "bengaluru and bangalore both recognized",
			text: "creators from Bengaluru",
			validate: func(t *testing.T, a Analysis) {
				assert.Equal(t, []string{"bengaluru"}, a.Cities)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Analyze(tt.text))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Run("labeled preamble keeps original text", func(t *testing.T) {
		text, filter := Compose("fitness influencers in Pune for women", "")
		assert.True(t, strings.HasPrefix(text, "Find influencers:"))
		assert.Contains(t, text, "niche fitness")
		assert.Contains(t, text, "location pune")
		assert.Contains(t, text, "gender female")
		assert.Contains(t, text, "Context: fitness influencers in Pune for women")
		assert.Empty(t, filter)
	})

	t.Run("tier produces coarse filter", func(t *testing.T) {
		text, filter := Compose("micro influencers for gaming", "")
		assert.Contains(t, text, "tier micro")
		assert.Equal(t, map[string]string{"follower_tier": "micro"}, filter)
	})

	t.Run("context appended to brief", func(t *testing.T) {
		text, _ := Compose("find creators", "budget is 2 lakh for tech reviews")
		assert.Contains(t, text, "find creators. budget is 2 lakh for tech reviews")
	})

	t.Run("plain text passes through when nothing detected", func(t *testing.T) {
		text, filter := Compose("something entirely generic", "")
		assert.Equal(t, "something entirely generic", text)
		assert.Empty(t, filter)
	})
}
