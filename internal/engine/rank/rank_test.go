// internal/engine/rank/rank_test.go
package rank

import (
	"testing"

	"creator-match/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createCandidate(id string, relevance, finalScore int) models.ScoredCandidate {
	return models.ScoredCandidate{
		Profile:    models.CreatorProfile{ID: id},
		Breakdown:  models.ScoreBreakdown{Relevance: relevance},
		FinalScore: finalScore,
	}
}

func ids(candidates []models.ScoredCandidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Profile.ID)
	}
	return out
}

// ==========================
// Rejection Floor Tests
// ==========================

func TestRank_RejectionFloors(t *testing.T) {
	tests := []struct {
		name         string
		candidates   []models.ScoredCandidate
		expectedIDs  []string
		expectedStat models.RankStats
	}{
		{
			name: "low relevance rejected despite high final score",
			candidates: []models.ScoredCandidate{
				createCandidate("good", 60, 70),
				createCandidate("wrong-vertical", 5, 65),
			},
			expectedIDs:  []string{"good"},
			expectedStat: models.RankStats{Scored: 2, Rejected: 1, Returned: 1},
		},
		{
			name: "low final score rejected despite high relevance",
			candidates: []models.ScoredCandidate{
				createCandidate("good", 60, 70),
				createCandidate("weak-overall", 80, 8),
			},
			expectedIDs:  []string{"good"},
			expectedStat: models.RankStats{Scored: 2, Rejected: 1, Returned: 1},
		},
		{
			name: "floor values themselves survive",
			candidates: []models.ScoredCandidate{
				createCandidate("at-floor", MinRelevance, MinFinalScore),
			},
			expectedIDs:  []string{"at-floor"},
			expectedStat: models.RankStats{Scored: 1, Rejected: 0, Returned: 1},
		},
		{
			name: "all rejected",
			candidates: []models.ScoredCandidate{
				createCandidate("a", 5, 50),
				createCandidate("b", 50, 5),
			},
			expectedIDs:  []string{},
			expectedStat: models.RankStats{Scored: 2, Rejected: 2, Returned: 0},
		},
		{
			name:         "empty pool",
			candidates:   nil,
			expectedIDs:  []string{},
			expectedStat: models.RankStats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked, stats := Rank(tt.candidates, 10)

			assert.Equal(t, tt.expectedIDs, ids(ranked))
			assert.Equal(t, tt.expectedStat, stats)
		})
	}
}

func TestRank_NoRejectedCandidateEverReturned(t *testing.T) {
	pool := []models.ScoredCandidate{
		createCandidate("a", 90, 90),
		createCandidate("b", 9, 90),
		createCandidate("c", 90, 9),
		createCandidate("d", 0, 0),
		createCandidate("e", 45, 45),
	}

	ranked, _ := Rank(pool, 0)
	for _, c := range ranked {
		assert.GreaterOrEqual(t, c.Breakdown.Relevance, MinRelevance)
		assert.GreaterOrEqual(t, c.FinalScore, MinFinalScore)
	}
}

// ==========================
// Ordering Tests
// ==========================

func TestRank_SortsDescendingByFinalScore(t *testing.T) {
	pool := []models.ScoredCandidate{
		createCandidate("mid", 50, 60),
		createCandidate("top", 50, 95),
		createCandidate("low", 50, 20),
	}

	ranked, _ := Rank(pool, 10)

	assert.Equal(t, []string{"top", "mid", "low"}, ids(ranked))
}

func TestRank_TiesKeepRetrievalOrder(t *testing.T) {
	pool := []models.ScoredCandidate{
		createCandidate("first", 50, 70),
		createCandidate("second", 60, 70),
		createCandidate("third", 40, 70),
		createCandidate("winner", 50, 80),
	}

	ranked, _ := Rank(pool, 10)

	assert.Equal(t, []string{"winner", "first", "second", "third"}, ids(ranked))
}

// ==========================
// Truncation Tests
// ==========================

func TestRank_Truncation(t *testing.T) {
	pool := []models.ScoredCandidate{
		createCandidate("a", 50, 90),
		createCandidate("b", 50, 80),
		createCandidate("c", 50, 70),
		createCandidate("d", 50, 60),
	}

	t.Run("limit below pool size", func(t *testing.T) {
		ranked, stats := Rank(pool, 2)

		assert.Equal(t, []string{"a", "b"}, ids(ranked))
		assert.Equal(t, models.RankStats{Scored: 4, Rejected: 0, Returned: 2}, stats)
	})

	t.Run("limit above pool size", func(t *testing.T) {
		ranked, _ := Rank(pool, 10)
		assert.Len(t, ranked, 4)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		ranked, _ := Rank(pool, 0)
		assert.Len(t, ranked, 4)
	})
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	pool := []models.ScoredCandidate{
		createCandidate("low", 50, 20),
		createCandidate("high", 50, 90),
	}

	Rank(pool, 10)

	assert.Equal(t, "low", pool[0].Profile.ID)
	assert.Equal(t, "high", pool[1].Profile.ID)
}
