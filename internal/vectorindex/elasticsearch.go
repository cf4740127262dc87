// internal/vectorindex/elasticsearch.go
package vectorindex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"creator-match/internal/common/logger"
	"creator-match/internal/engine/retrieve"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const embeddingField = "embedding"

// Elasticsearch adapts an ES index with a dense_vector field to the
// retrieve.VectorIndex interface.
type Elasticsearch struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewElasticsearch(client *elasticsearch.Client, index string, log logger.Logger) *Elasticsearch {
	return &Elasticsearch{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"component": "vector-index", "index": index}),
	}
}

// Query runs a kNN search and returns the hits with their metadata.
func (e *Elasticsearch) Query(ctx context.Context, vector []float32, topK int, filter map[string]string, includeMetadata bool) ([]retrieve.Match, error) {
	if topK <= 0 {
		return nil, nil
	}

	body, err := json.Marshal(buildKNNQuery(vector, topK, filter, includeMetadata))
	if err != nil {
		return nil, fmt.Errorf("marshal knn query: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{e.index},
		Body:  strings.NewReader(string(body)),
	}

	res, err := req.Do(ctx, e.client)
	if err != nil {
		return nil, fmt.Errorf("execute knn search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("knn search error: %s", res.Status())
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	matches := make([]retrieve.Match, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		matches = append(matches, retrieve.Match{
			ID:       hit.ID,
			Score:    hit.Score,
			Metadata: hit.Source,
		})
	}

	e.logger.Debug("knn search executed", map[string]interface{}{
		"topK": topK,
		"hits": len(matches),
	})

	return matches, nil
}

// Stats returns the index's total document count via the count API.
func (e *Elasticsearch) Stats(ctx context.Context) (retrieve.IndexStats, error) {
	res, err := e.client.Count(
		e.client.Count.WithContext(ctx),
		e.client.Count.WithIndex(e.index),
	)
	if err != nil {
		return retrieve.IndexStats{}, fmt.Errorf("execute count: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return retrieve.IndexStats{}, fmt.Errorf("count error: %s", res.Status())
	}

	var parsed struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return retrieve.IndexStats{}, fmt.Errorf("parse count response: %w", err)
	}

	return retrieve.IndexStats{RecordCount: parsed.Count}, nil
}

// buildKNNQuery assembles the search body. All filters are exact-match
// term clauses applied inside the kNN clause.
func buildKNNQuery(vector []float32, topK int, filter map[string]string, includeMetadata bool) map[string]interface{} {
	knn := map[string]interface{}{
		"field":          embeddingField,
		"query_vector":   vector,
		"k":              topK,
		"num_candidates": topK * 2,
	}

	if len(filter) > 0 {
		filterClauses := make([]interface{}, 0, len(filter))
		for field, value := range filter {
			filterClauses = append(filterClauses, map[string]interface{}{
				"term": map[string]interface{}{field: value},
			})
		}
		knn["filter"] = map[string]interface{}{
			"bool": map[string]interface{}{"filter": filterClauses},
		}
	}

	return map[string]interface{}{
		"knn":     knn,
		"size":    topK,
		"_source": includeMetadata,
	}
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string                 `json:"_id"`
			Score  float64                `json:"_score"`
			Source map[string]interface{} `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}
