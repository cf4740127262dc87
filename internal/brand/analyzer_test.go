// internal/brand/analyzer_test.go
package brand

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creator-match/internal/common/errors"
	httpclient "creator-match/internal/common/http"
	"creator-match/internal/common/logger"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const validAnalysisJSON = `{
	"brand_name": "GlowCo",
	"industry": "beauty",
	"niche_keywords": ["skincare", "beauty", "glow"],
	"target_gender": "female",
	"target_age_range": "18-30",
	"primary_regions": ["Mumbai", "Delhi"],
	"price_segment": "mid-range",
	"budget_hint_inr": 250000,
	"campaign_goal": "awareness",
	"brand_tone": "playful",
	"usp": "clean ingredients",
	"products": ["serum", "cleanser"],
	"influencer_types": ["micro"],
	"content_vibe": "bright"
}`

func createAnalyzer(t *testing.T, gen Generator) *Analyzer {
	fetcher := httpclient.NewClient(2 * time.Second)
	return NewAnalyzer(gen, fetcher, 1<<20, logger.NewTestLogger(t))
}

func floatPtr(v float64) *float64 { return &v }

// ==========================
// Analysis Tests
// ==========================

func TestAnalyzer_Analyze_DescriptionOnly(t *testing.T) {
	gen := &fakeGenerator{response: validAnalysisJSON}
	analyzer := createAnalyzer(t, gen)

	res, err := analyzer.Analyze(context.Background(), "", "A skincare brand for young women.")

	assert.NoError(t, err)
	assert.Equal(t, "beauty", res.Industry)
	assert.Equal(t, []string{"skincare", "beauty", "glow"}, res.Niche)
	assert.Equal(t, 250000.0, res.Budget)
	assert.Equal(t, "GlowCo", res.Analysis.BrandName)

	assert.Contains(t, gen.lastPrompt, "Brand Description:")
	assert.Contains(t, gen.lastPrompt, "A skincare brand for young women.")
	assert.NotContains(t, gen.lastPrompt, "Website Content:")
}

func TestAnalyzer_Analyze_FetchesAndStripsPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><style>.x{color:red}</style>` +
			`<script>alert("tracker")</script></head>` +
			`<body><h1>GlowCo</h1><p>Clean skincare for every day.</p></body></html>`))
	}))
	defer server.Close()

	gen := &fakeGenerator{response: validAnalysisJSON}
	analyzer := createAnalyzer(t, gen)

	_, err := analyzer.Analyze(context.Background(), server.URL, "")

	assert.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "Website Content:")
	assert.Contains(t, gen.lastPrompt, "GlowCo Clean skincare for every day.")
	assert.NotContains(t, gen.lastPrompt, "tracker")
	assert.NotContains(t, gen.lastPrompt, "color:red")
	assert.NotContains(t, gen.lastPrompt, "<h1>")
}

func TestAnalyzer_Analyze_FencedJSONAccepted(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + validAnalysisJSON + "\n```"}
	analyzer := createAnalyzer(t, gen)

	res, err := analyzer.Analyze(context.Background(), "", "skincare brand")

	assert.NoError(t, err)
	assert.Equal(t, "beauty", res.Industry)
}

func TestAnalyzer_Analyze_FetchFailureWithDescriptionContinues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gen := &fakeGenerator{response: validAnalysisJSON}
	analyzer := createAnalyzer(t, gen)

	res, err := analyzer.Analyze(context.Background(), server.URL, "skincare brand")

	assert.NoError(t, err)
	assert.Equal(t, "beauty", res.Industry)
	assert.Contains(t, gen.lastPrompt, "could not be fetched")
}

func TestAnalyzer_Analyze_Failures(t *testing.T) {
	t.Run("both inputs empty", func(t *testing.T) {
		analyzer := createAnalyzer(t, &fakeGenerator{})

		_, err := analyzer.Analyze(context.Background(), "", "")

		stdErr, ok := err.(*errors.StandardError)
		if assert.True(t, ok) {
			assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
		}
	})

	t.Run("fetch failure without description is fatal", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		analyzer := createAnalyzer(t, &fakeGenerator{response: validAnalysisJSON})

		_, err := analyzer.Analyze(context.Background(), server.URL, "")

		stdErr, ok := err.(*errors.StandardError)
		if assert.True(t, ok) {
			assert.Equal(t, errors.ErrCodeBrandFetchFailed, stdErr.Code)
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		analyzer := createAnalyzer(t, &fakeGenerator{err: stderrors.New("quota exceeded")})

		_, err := analyzer.Analyze(context.Background(), "", "skincare brand")

		stdErr, ok := err.(*errors.StandardError)
		if assert.True(t, ok) {
			assert.Equal(t, errors.ErrCodeBrandAnalysisFailed, stdErr.Code)
		}
	})

	t.Run("invalid JSON from model", func(t *testing.T) {
		analyzer := createAnalyzer(t, &fakeGenerator{response: "sorry, I cannot do that"})

		_, err := analyzer.Analyze(context.Background(), "", "skincare brand")

		stdErr, ok := err.(*errors.StandardError)
		if assert.True(t, ok) {
			assert.Equal(t, errors.ErrCodeBrandAnalysisFailed, stdErr.Code)
		}
	})
}

// ==========================
// Scoring Context Tests
// ==========================

func TestScoringContext(t *testing.T) {
	analysis := Analysis{
		Industry:       "beauty",
		NicheKeywords:  []string{"skincare", "glow"},
		TargetGender:   "female",
		TargetAgeRange: "18-30",
		PrimaryRegions: []string{"Mumbai"},
		PriceSegment:   "mid-range",
		BudgetHintINR:  floatPtr(250000),
		CampaignGoal:   "awareness",
	}

	out := ScoringContext(analysis)

	assert.Contains(t, out, "Industry: beauty")
	assert.Contains(t, out, "Niche: skincare, glow")
	assert.Contains(t, out, "Target gender: female")
	assert.Contains(t, out, "Budget: INR 250000")
	assert.Contains(t, out, ". ", "parts are sentence-joined")
}

func TestScoringContext_SkipsEmptyAndCapsProducts(t *testing.T) {
	analysis := Analysis{
		Industry: "food",
		Products: []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"},
	}

	out := ScoringContext(analysis)

	assert.Contains(t, out, "Products: p1, p2, p3, p4, p5")
	assert.NotContains(t, out, "p6")
	assert.NotContains(t, out, "Target gender")
	assert.NotContains(t, out, "Budget")
}

func TestScoringContext_Empty(t *testing.T) {
	assert.Equal(t, "", ScoringContext(Analysis{}))
}

// ==========================
// HTML Stripping Tests
// ==========================

func TestStripHTML(t *testing.T) {
	in := `<html><script src="x.js">var a=1;</script><style>p{}</style>` +
		"<body>\n  <p>Hello   <b>world</b></p>\n</body></html>"

	assert.Equal(t, "Hello world", stripHTML(in))
}

func TestStripHTML_CapsLength(t *testing.T) {
	out := stripHTML("<p>" + strings.Repeat("a", 20000) + "</p>")
	assert.Len(t, out, 15000)
}
