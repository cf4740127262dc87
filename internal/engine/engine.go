// internal/engine/engine.go
package engine

import (
	"context"
	"sync"
	"time"

	"creator-match/internal/common/errors"
	"creator-match/internal/common/logger"
	"creator-match/internal/common/metrics"
	"creator-match/internal/common/observability"
	"creator-match/internal/engine/query"
	"creator-match/internal/engine/rank"
	"creator-match/internal/engine/retrieve"
	"creator-match/internal/engine/scoring"
	"creator-match/internal/models"
)

// Result is the outcome of one end-to-end matching request.
type Result struct {
	Candidates []models.ScoredCandidate
	Stats      models.RankStats
}

// Engine wires the matching pipeline: compose, retrieve, score, rank. It is
// stateless across requests except for the retriever's stats cache.
type Engine struct {
	retriever    *retrieve.Retriever
	scorer       *scoring.Scorer
	scoreWorkers int
	logger       logger.Logger
	obs          *observability.Observability
}

func New(retriever *retrieve.Retriever, scoreWorkers int, log logger.Logger, obs *observability.Observability) *Engine {
	if scoreWorkers <= 0 {
		scoreWorkers = 8
	}
	return &Engine{
		retriever:    retriever,
		scorer:       scoring.NewScorer(),
		scoreWorkers: scoreWorkers,
		logger:       log.WithFields(map[string]interface{}{"component": "engine"}),
		obs:          obs,
	}
}

// Search runs the full pipeline for one request. Invalid caller parameters
// are the only surfaced errors; retrieval failures degrade to an empty
// result inside the retriever.
func (e *Engine) Search(ctx context.Context, req models.SearchRequest) (*Result, error) {
	if req.Query.Brief == "" {
		return nil, e.fail(ctx, errors.NewMissingQueryError())
	}
	if req.TopK <= 0 {
		return nil, e.fail(ctx, errors.NewValidationFailedError("topK must be positive"))
	}

	start := time.Now()

	searchText, coarseFilter := query.Compose(req.Query.Brief, req.Query.Context)
	pool := e.retriever.Retrieve(ctx, searchText, coarseFilter, req.Query.ExplicitFilter)

	signals := scoring.DeriveSignals(req.Query)
	scored := e.scorePool(pool, signals)

	ranked, stats := rank.Rank(scored, req.TopK)

	if e.obs != nil {
		e.obs.RecordSearch(ctx, "ok")
		e.obs.RecordSearchDuration(ctx, time.Since(start), "ok")
		e.obs.RecordCandidateCounts(ctx, stats.Scored, stats.Rejected, stats.Returned)
	}

	e.logger.Info("search completed", map[string]interface{}{
		"requestId":  req.RequestID,
		"poolSize":   len(pool),
		"rejected":   stats.Rejected,
		"returned":   stats.Returned,
		"durationMs": time.Since(start).Milliseconds(),
	})

	return &Result{Candidates: ranked, Stats: stats}, nil
}

// fail counts a rejected request before surfacing the error.
func (e *Engine) fail(ctx context.Context, err *errors.StandardError) error {
	metrics.SearchesFailed.WithLabelValues(string(err.Code)).Inc()
	if e.obs != nil {
		e.obs.RecordSearch(ctx, "error")
	}
	return err
}

// scorePool scores candidates in parallel. Results land in index-addressed
// slots so the output order stays the retrieval order regardless of
// scheduling.
func (e *Engine) scorePool(pool []models.CreatorProfile, signals scoring.RequestSignals) []models.ScoredCandidate {
	if len(pool) == 0 {
		return nil
	}

	scored := make([]models.ScoredCandidate, len(pool))

	workers := e.scoreWorkers
	if workers > len(pool) {
		workers = len(pool)
	}

	var wg sync.WaitGroup
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scored[i] = e.scorer.Score(pool[i], signals)
			}
		}()
	}

	for i := range pool {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return scored
}
