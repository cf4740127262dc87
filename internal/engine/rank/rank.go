// internal/engine/rank/rank.go
package rank

import (
	"sort"

	"creator-match/internal/models"
)

// Two independent rejection floors: a candidate can have an acceptable
// overall score yet a catastrophically wrong category, or vice versa.
const (
	MinRelevance  = 10
	MinFinalScore = 10
)

// Rank rejects low-quality candidates, sorts the remainder descending by
// FinalScore (stable, ties keep retrieval order) and truncates to limit.
func Rank(candidates []models.ScoredCandidate, limit int) ([]models.ScoredCandidate, models.RankStats) {
	stats := models.RankStats{Scored: len(candidates)}

	kept := make([]models.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Breakdown.Relevance < MinRelevance || c.FinalScore < MinFinalScore {
			stats.Rejected++
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].FinalScore > kept[j].FinalScore
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	stats.Returned = len(kept)
	return kept, stats
}
