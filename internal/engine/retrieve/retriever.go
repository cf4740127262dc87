// internal/engine/retrieve/retriever.go
package retrieve

import (
	"context"

	"creator-match/internal/common/logger"
	"creator-match/internal/common/metrics"
	"creator-match/internal/models"
)

// Embedder turns query text into a vector. Implementations are network
// clients; retries are the caller's concern, not the retriever's.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Match is one raw vector-index hit with its attached metadata.
type Match struct {
	ID       string
	Score    float64
	Metadata map[string]interface{}
}

// IndexStats reports the index's current corpus size.
type IndexStats struct {
	RecordCount int `json:"recordCount"`
}

// VectorIndex is the similarity store consumed by the retriever.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, topK int, filter map[string]string, includeMetadata bool) ([]Match, error)
	Stats(ctx context.Context) (IndexStats, error)
}

// Config holds the retriever's operational knobs.
type Config struct {
	MaxRetrievalWidth int
	SimilarityFloor   float64
}

// Retriever issues one embedding call and one index query per request. On
// either failing it returns an empty pool instead of an error, so one
// failing dependency never aborts a whole request pipeline. This is policy,
// not an oversight.
type Retriever struct {
	embedder Embedder
	index    VectorIndex
	stats    *StatsCache
	config   Config
	logger   logger.Logger
}

func NewRetriever(embedder Embedder, index VectorIndex, stats *StatsCache, cfg Config, log logger.Logger) *Retriever {
	if cfg.MaxRetrievalWidth <= 0 {
		cfg.MaxRetrievalWidth = 500
	}
	return &Retriever{
		embedder: embedder,
		index:    index,
		stats:    stats,
		config:   cfg,
		logger:   log.WithFields(map[string]interface{}{"component": "retriever"}),
	}
}

// Retrieve embeds searchText and queries the index with the merged filter.
// Explicit filter keys override coarse ones.
func (r *Retriever) Retrieve(ctx context.Context, searchText string, coarse, explicit map[string]string) []models.CreatorProfile {
	vector, err := r.embedder.Embed(ctx, searchText)
	if err != nil {
		r.logger.Warn("embedding failed, degrading to empty pool", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.RetrievalDegraded.WithLabelValues("embed").Inc()
		return nil
	}

	filter := mergeFilters(coarse, explicit)
	width := r.retrievalWidth(ctx)

	matches, err := r.index.Query(ctx, vector, width, filter, true)
	if err != nil {
		r.logger.Warn("index query failed, degrading to empty pool", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.RetrievalDegraded.WithLabelValues("query").Inc()
		return nil
	}

	profiles := make([]models.CreatorProfile, 0, len(matches))
	for _, m := range matches {
		if m.Score < r.config.SimilarityFloor {
			continue
		}
		profiles = append(profiles, ProfileFromMetadata(m.ID, m.Score, m.Metadata))
	}

	r.logger.Debug("candidate pool retrieved", map[string]interface{}{
		"requested": width,
		"matches":   len(matches),
		"kept":      len(profiles),
	})

	return profiles
}

// retrievalWidth sizes the query from the cached corpus size, capped to
// protect downstream scoring cost.
func (r *Retriever) retrievalWidth(ctx context.Context) int {
	count, err := r.stats.RecordCount(ctx)
	if err != nil || count <= 0 {
		return r.config.MaxRetrievalWidth
	}
	if count > r.config.MaxRetrievalWidth {
		return r.config.MaxRetrievalWidth
	}
	return count
}

func mergeFilters(coarse, explicit map[string]string) map[string]string {
	if len(coarse) == 0 && len(explicit) == 0 {
		return nil
	}

	merged := make(map[string]string, len(coarse)+len(explicit))
	for k, v := range coarse {
		merged[k] = v
	}
	for k, v := range explicit {
		merged[k] = v
	}
	return merged
}
