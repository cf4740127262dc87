// internal/brand/analyzer.go
package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"creator-match/internal/common/errors"
	httpclient "creator-match/internal/common/http"
	"creator-match/internal/common/logger"
)

// Generator produces text from a prompt. Satisfied by the Gemini client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analysis is the structured brand profile extracted from a website or a
// pasted description. Field names follow the extraction prompt.
type Analysis struct {
	BrandName       string   `json:"brand_name"`
	Industry        string   `json:"industry"`
	NicheKeywords   []string `json:"niche_keywords"`
	TargetGender    string   `json:"target_gender"`
	TargetAgeRange  string   `json:"target_age_range"`
	PrimaryRegions  []string `json:"primary_regions"`
	PriceSegment    string   `json:"price_segment"`
	BudgetHintINR   *float64 `json:"budget_hint_inr"`
	CampaignGoal    string   `json:"campaign_goal"`
	BrandTone       string   `json:"brand_tone"`
	USP             string   `json:"usp"`
	Products        []string `json:"products"`
	InfluencerTypes []string `json:"influencer_types"`
	ContentVibe     string   `json:"content_vibe"`
}

// Result is what the brand-context endpoint returns. ContextString is the
// compact form consumed by the scoring engine.
type Result struct {
	Industry      string   `json:"industry"`
	Niche         []string `json:"niche"`
	Budget        float64  `json:"budget,omitempty"`
	ContextString string   `json:"contextString"`
	Analysis      Analysis `json:"analysis"`
}

const maxPageChars = 15000

type Analyzer struct {
	generator    Generator
	fetcher      *httpclient.Client
	maxBodyBytes int64
	logger       logger.Logger
}

func NewAnalyzer(gen Generator, fetcher *httpclient.Client, maxBodyBytes int64, log logger.Logger) *Analyzer {
	return &Analyzer{
		generator:    gen,
		fetcher:      fetcher,
		maxBodyBytes: maxBodyBytes,
		logger:       log.WithFields(map[string]interface{}{"component": "brand_analyzer"}),
	}
}

// Analyze extracts a brand profile from a website URL and/or a free-text
// description. At least one of the two must be provided. A failed page
// fetch is non-fatal when a description exists; the model is told to infer
// from the remaining input.
func (a *Analyzer) Analyze(ctx context.Context, url, description string) (*Result, error) {
	if url == "" && description == "" {
		return nil, errors.NewValidationFailedError("either url or description is required")
	}

	var pageText string
	if url != "" {
		raw, err := a.fetcher.FetchText(ctx, url, a.maxBodyBytes)
		if err != nil {
			if description == "" {
				return nil, errors.NewBrandFetchFailedError(url, err)
			}
			a.logger.Warn("brand page fetch failed, continuing with description", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
		} else {
			pageText = stripHTML(raw)
		}
	}

	prompt := buildPrompt(url, pageText, description)

	raw, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, errors.NewBrandAnalysisFailedError(err)
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(stripFences(raw)), &analysis); err != nil {
		a.logger.Error("brand analysis returned invalid JSON", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, errors.NewBrandAnalysisFailedError(err)
	}

	res := &Result{
		Industry:      analysis.Industry,
		Niche:         analysis.NicheKeywords,
		ContextString: ScoringContext(analysis),
		Analysis:      analysis,
	}
	if analysis.BudgetHintINR != nil {
		res.Budget = *analysis.BudgetHintINR
	}

	a.logger.Info("brand analyzed", map[string]interface{}{
		"brand":    analysis.BrandName,
		"industry": analysis.Industry,
		"niches":   len(analysis.NicheKeywords),
	})

	return res, nil
}

// ScoringContext flattens an analysis into the compact sentence form the
// scoring engine parses for brand categories and budget.
func ScoringContext(a Analysis) string {
	parts := make([]string, 0, 11)
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	add("Industry", a.Industry)
	add("Niche", strings.Join(a.NicheKeywords, ", "))
	add("Target gender", a.TargetGender)
	add("Target age", a.TargetAgeRange)
	add("Regions", strings.Join(a.PrimaryRegions, ", "))
	add("Price segment", a.PriceSegment)
	if a.BudgetHintINR != nil && *a.BudgetHintINR > 0 {
		parts = append(parts, fmt.Sprintf("Budget: INR %.0f", *a.BudgetHintINR))
	}
	add("Goal", a.CampaignGoal)
	add("Tone", a.BrandTone)
	add("USP", a.USP)
	if len(a.Products) > 0 {
		capped := a.Products
		if len(capped) > 5 {
			capped = capped[:5]
		}
		add("Products", strings.Join(capped, ", "))
	}
	return strings.Join(parts, ". ")
}

func buildPrompt(url, pageText, description string) string {
	var b strings.Builder
	b.WriteString("Analyze this brand content and extract key information for influencer marketing matching.\n")
	if url != "" {
		b.WriteString("\nWebsite URL: " + url + "\n")
	}
	if pageText != "" {
		b.WriteString("\nWebsite Content:\n" + pageText + "\n")
	} else if url != "" {
		b.WriteString("\n(Note: the website could not be fetched. Infer from the other inputs.)\n")
	}
	if description != "" {
		b.WriteString("\nBrand Description:\n" + description + "\n")
	}
	b.WriteString(`
Return a JSON object with ONLY these fields:
{
  "brand_name": "",
  "industry": "",
  "niche_keywords": [],
  "target_gender": "male|female|both",
  "target_age_range": "",
  "primary_regions": [],
  "price_segment": "budget|mid-range|premium|luxury",
  "budget_hint_inr": null,
  "campaign_goal": "",
  "brand_tone": "",
  "usp": "",
  "products": [],
  "influencer_types": [],
  "content_vibe": ""
}

Rules:
- Output ONLY valid JSON. No markdown, no explanation.
- niche_keywords: 3-8 specific keywords like ["skincare","beauty","glow","women"]
- target_gender: infer from products/content
- primary_regions: Indian cities or "Pan-India" or "Global"
- price_segment: infer from product pricing
- budget_hint_inr: if any price/budget mentioned, extract as number (e.g. 50000), else null
- influencer_types: e.g. ["micro","macro"] based on brand size
- Be precise and concise`)
	return b.String()
}

var (
	scriptRe     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRe      = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stripHTML reduces a fetched page to plain text bounded at maxPageChars.
func stripHTML(html string) string {
	text := scriptRe.ReplaceAllString(html, "")
	text = styleRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	if len(text) > maxPageChars {
		text = text[:maxPageChars]
	}
	return text
}

// stripFences removes markdown code fences the model sometimes wraps its
// JSON output in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
