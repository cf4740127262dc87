// internal/engine/scoring/audience.go
package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"creator-match/internal/engine/fieldparse"
	"creator-match/internal/models"
)

var ageConcentrationRe = regexp.MustCompile(`(\d{2})\s*-\s*(\d{2})`)

// AudienceScorer adjusts a neutral base by gender, age and geography
// alignment between the query and the candidate's audience composition.
type AudienceScorer struct {
	neutral int

	genderBonusMin      int
	genderBonusMax      int
	genderMismatchPct   int
	genderMismatchDelta int

	ageToleranceYears int
	ageOverlapBonus   int
	ageMissPenalty    int

	cityBonus int

	panIndiaRules     []ratioAdjustment // thresholds in home-share percent
	panIndiaPenalty   int
	implicitHomePct   int
	implicitHomeBonus int
}

func NewAudienceScorer() *AudienceScorer {
	return &AudienceScorer{
		neutral:             50,
		genderBonusMin:      15,
		genderBonusMax:      25,
		genderMismatchPct:   30,
		genderMismatchDelta: 20,
		ageToleranceYears:   5,
		ageOverlapBonus:     15,
		ageMissPenalty:      8,
		cityBonus:           12,
		panIndiaRules: []ratioAdjustment{
			{80, 15},
			{60, 10},
			{40, 3},
		},
		panIndiaPenalty:   8,
		implicitHomePct:   80,
		implicitHomeBonus: 5,
	}
}

func (a *AudienceScorer) Score(p *models.CreatorProfile, sig RequestSignals) int {
	score := a.neutral

	score += a.genderDelta(p, sig)
	score += a.ageDelta(p, sig)
	score += a.geoDelta(p, sig)

	return clamp(score)
}

func (a *AudienceScorer) genderDelta(p *models.CreatorProfile, sig RequestSignals) int {
	if sig.Analysis.Gender == "" {
		return 0
	}

	malePct, femaleSide, ok := genderSplit(p)
	if !ok {
		return 0
	}

	requested := malePct
	if sig.Analysis.Gender == "female" {
		requested = femaleSide
	}

	switch {
	case requested >= 50:
		// Scale the bonus by how skewed the audience is toward the
		// requested gender.
		extra := float64(requested-50) / 50 * float64(a.genderBonusMax-a.genderBonusMin)
		return a.genderBonusMin + int(math.Round(extra))
	case requested <= a.genderMismatchPct:
		return -a.genderMismatchDelta
	default:
		return 0
	}
}

// genderSplit parses the candidate's "M/F" pair. Male-first is the canonical
// order throughout the system.
func genderSplit(p *models.CreatorProfile) (malePct, femalePct int, ok bool) {
	male, female, ok := fieldparse.ParseSplitPair(p.GenderSplit)
	if !ok {
		return 0, 0, false
	}
	return male, female, true
}

func (a *AudienceScorer) ageDelta(p *models.CreatorProfile, sig RequestSignals) int {
	if !sig.Analysis.HasAge || p.AgeConcentration == "" {
		return 0
	}

	m := ageConcentrationRe.FindStringSubmatch(p.AgeConcentration)
	if m == nil {
		return 0
	}

	candLo, _ := strconv.Atoi(m[1])
	candHi, _ := strconv.Atoi(m[2])
	if candLo > candHi {
		return 0
	}

	wantLo := sig.Analysis.AgeMin - a.ageToleranceYears
	wantHi := sig.Analysis.AgeMax + a.ageToleranceYears
	if candLo <= wantHi && candHi >= wantLo {
		return a.ageOverlapBonus
	}
	return -a.ageMissPenalty
}

func (a *AudienceScorer) geoDelta(p *models.CreatorProfile, sig RequestSignals) int {
	if len(sig.Analysis.Cities) > 0 {
		location := strings.ToLower(p.Location)
		for _, city := range sig.Analysis.Cities {
			if strings.Contains(location, city) {
				return a.cityBonus
			}
		}
		return 0
	}

	homePct, _, hasGeo := fieldparse.ParseSplitPair(p.GeoSplit)

	if sig.Analysis.PanIndia {
		if !hasGeo {
			return 0
		}
		for _, rule := range a.panIndiaRules {
			if float64(homePct) >= rule.minRatio {
				return rule.delta
			}
		}
		return -a.panIndiaPenalty
	}

	// No explicit geography in the query: campaigns in this domain still
	// implicitly prefer a domestic audience.
	if hasGeo && homePct >= a.implicitHomePct {
		return a.implicitHomeBonus
	}
	return 0
}
