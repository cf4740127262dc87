// internal/engine/query/composer.go
package query

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"creator-match/internal/engine/taxonomy"
)

// Analysis holds the structured facets detected in free query text. It is
// shared by the composer (embedding preamble, coarse filter) and the
// audience scorer (gender/age/geography preferences).
type Analysis struct {
	Niches   []string
	Cities   []string
	Gender   string // "female", "male" or ""
	AgeMin   int
	AgeMax   int
	HasAge   bool
	PanIndia bool
	TierWord string // canonical follower tier keyword, "" if none
}

// tierSynonyms is checked in order; the first match wins so that at most one
// tier constraint is ever produced.
var tierSynonyms = []struct {
	keyword string
	tier    string
}{
	{"nano", "nano"},
	{"micro", "micro"},
	{"mid", "mid"},
	{"macro", "macro"},
	{"mega", "mega"},
	{"small", "nano"},
	{"big", "macro"},
	{"large", "mega"},
}

var knownCities = []string{
	"mumbai", "delhi", "bangalore", "bengaluru", "hyderabad", "chennai",
	"kolkata", "pune", "ahmedabad", "jaipur", "lucknow", "chandigarh",
	"indore", "kochi", "goa", "surat", "nagpur", "gurgaon", "noida",
}

var (
	femaleWords = []string{"women", "woman", "female", "girls", "girl", "ladies"}
	maleWords   = []string{"men", "man", "male", "boys", "boy", "gentlemen"}
	panIndiaRe  = regexp.MustCompile(`(?i)pan[- ]?india|nationwide|all over india|across india`)
	ageRangeRe  = regexp.MustCompile(`(\d{2})\s*-\s*(\d{2})`)
)

// Analyze extracts structured facets from free text.
func Analyze(text string) Analysis {
	var a Analysis
	lower := strings.ToLower(text)

	niches := taxonomy.ExtractCategories(lower)
	a.Niches = make([]string, 0, len(niches))
	for n := range niches {
		a.Niches = append(a.Niches, n)
	}
	sort.Strings(a.Niches)

	for _, city := range knownCities {
		if taxonomy.ContainsWord(lower, city) {
			a.Cities = append(a.Cities, city)
		}
	}

	// Female words are checked first: "women" contains "men".
	for _, w := range femaleWords {
		if taxonomy.ContainsWord(lower, w) {
			a.Gender = "female"
			break
		}
	}
	if a.Gender == "" {
		for _, w := range maleWords {
			if taxonomy.ContainsWord(lower, w) {
				a.Gender = "male"
				break
			}
		}
	}

	if m := ageRangeRe.FindStringSubmatch(lower); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo <= hi {
			a.AgeMin, a.AgeMax, a.HasAge = lo, hi, true
		}
	}

	a.PanIndia = panIndiaRe.MatchString(lower)

	for _, syn := range tierSynonyms {
		if taxonomy.ContainsWord(lower, syn.keyword) {
			a.TierWord = syn.tier
			break
		}
	}

	return a
}

// Compose builds the embedding query text plus a coarse exact-match filter
// from the brief and optional context. The labeled preamble biases the
// embedding toward detected facets without discarding the original text.
func Compose(brief, context string) (string, map[string]string) {
	combined := strings.TrimSpace(brief)
	if c := strings.TrimSpace(context); c != "" {
		combined = combined + ". " + c
	}

	a := Analyze(combined)

	var hints []string
	if len(a.Niches) > 0 {
		hints = append(hints, fmt.Sprintf("niche %s", strings.Join(a.Niches, ", ")))
	}
	if len(a.Cities) > 0 {
		hints = append(hints, fmt.Sprintf("location %s", strings.Join(a.Cities, ", ")))
	}
	if a.Gender != "" {
		hints = append(hints, fmt.Sprintf("gender %s", a.Gender))
	}
	if a.TierWord != "" {
		hints = append(hints, fmt.Sprintf("tier %s", a.TierWord))
	}

	searchText := combined
	if len(hints) > 0 {
		searchText = fmt.Sprintf("Find influencers: %s. Context: %s", strings.Join(hints, ". "), combined)
	}

	filter := map[string]string{}
	if a.TierWord != "" {
		filter["follower_tier"] = a.TierWord
	}

	return searchText, filter
}
