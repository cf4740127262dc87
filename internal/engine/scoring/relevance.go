// internal/engine/scoring/relevance.go
package scoring

import (
	"math"

	"creator-match/internal/engine/taxonomy"
	"creator-match/internal/models"
)

// RelevanceScorer blends three categorical-fit signals. Vector similarity is
// deliberately capped at 30% influence: a strong semantic match can still be
// the wrong business vertical, so a direct tag match stays the dominant
// signal.
type RelevanceScorer struct {
	directWeight     float64
	keywordWeight    float64
	similarityWeight float64

	zeroOverlapScore  int
	minOverlapScore   int
	neutralScore      int
	keywordFloorScore int
}

func NewRelevanceScorer() *RelevanceScorer {
	return &RelevanceScorer{
		directWeight:      0.50,
		keywordWeight:     0.20,
		similarityWeight:  0.30,
		zeroOverlapScore:  5,
		minOverlapScore:   40,
		neutralScore:      50,
		keywordFloorScore: 15,
	}
}

func (r *RelevanceScorer) Score(p *models.CreatorProfile, sig RequestSignals) int {
	direct := r.directOverlapScore(p, sig)
	keyword := r.keywordOverlapScore(p, sig)
	similarity := rescaleSimilarity(p.Similarity)

	blended := float64(direct)*r.directWeight +
		float64(keyword)*r.keywordWeight +
		float64(similarity)*r.similarityWeight

	return clamp(int(math.Round(blended)))
}

// directOverlapScore compares the brand's declared category list against the
// candidate's own tags. Zero overlap is a heavy penalty so wrong-vertical
// candidates cannot win on vector similarity alone.
func (r *RelevanceScorer) directOverlapScore(p *models.CreatorProfile, sig RequestSignals) int {
	if !sig.HasBrandContext || len(sig.BrandCategories) == 0 {
		return r.neutralScore
	}

	candidateCats := taxonomy.ExtractCategories(p.SearchableText())
	overlap := taxonomy.Overlap(sig.BrandCategories, candidateCats)
	if overlap == 0 {
		return r.zeroOverlapScore
	}

	fraction := float64(overlap) / float64(len(sig.BrandCategories))
	scaled := int(math.Round(fraction * 100))
	if scaled < r.minOverlapScore {
		return r.minOverlapScore
	}
	return scaled
}

// keywordOverlapScore compares taxonomy categories extracted from the query
// text against those from the candidate's niche/tags/vibe text.
func (r *RelevanceScorer) keywordOverlapScore(p *models.CreatorProfile, sig RequestSignals) int {
	if len(sig.QueryCategories) == 0 {
		return r.neutralScore
	}

	candidateCats := taxonomy.ExtractCategories(p.SearchableText())
	overlap := taxonomy.Overlap(sig.QueryCategories, candidateCats)
	if overlap == 0 {
		return r.keywordFloorScore
	}

	fraction := float64(overlap) / float64(len(sig.QueryCategories))
	return r.keywordFloorScore + int(math.Round(fraction*float64(100-r.keywordFloorScore)))
}

// rescaleSimilarity maps the index's native similarity range to 0-100.
func rescaleSimilarity(similarity float64) int {
	return clamp(int(math.Round(similarity * 100)))
}
