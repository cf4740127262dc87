// internal/api/search.go
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"creator-match/internal/common/errors"
	"creator-match/internal/engine/present"
	"creator-match/internal/models"
)

const (
	defaultTopK = 5
	maxTopK     = 20
)

type searchResponse struct {
	Success   bool                          `json:"success"`
	Query     string                        `json:"query"`
	Count     int                           `json:"count"`
	Results   []present.StructuredCandidate `json:"results"`
	Stats     models.RankStats              `json:"stats"`
	Narrative string                        `json:"narrative,omitempty"`
}

// Search handles GET /api/search-influencers.
func (h *handlers) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	brief := q.Get("q")
	if brief == "" {
		h.errs.HandleRequestError(w, r, errors.NewMissingQueryError())
		return
	}

	topK := defaultTopK
	if raw := q.Get("topK"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.errs.HandleRequestError(w, r, errors.NewValidationFailedError("topK must be an integer"))
			return
		}
		topK = clampInt(n, 1, maxTopK)
	}

	req := models.SearchRequest{
		Query: models.QueryContext{
			Brief:        brief,
			Context:      q.Get("context"),
			BrandContext: q.Get("brandContext"),
		},
		TopK:      topK,
		RequestID: RequestIDFrom(r.Context()),
	}
	if tier := q.Get("tier"); tier != "" {
		req.Query.ExplicitFilter = map[string]string{"follower_tier": tier}
	}

	result, err := h.engine.Search(r.Context(), req)
	if err != nil {
		h.errs.HandleRequestError(w, r, err)
		return
	}

	resp := searchResponse{
		Success: true,
		Query:   brief,
		Count:   len(result.Candidates),
		Results: present.Structured(result.Candidates),
		Stats:   result.Stats,
	}
	if q.Get("format") == "narrative" {
		resp.Narrative = present.Narrative(result.Candidates)
	}

	writeJSON(w, http.StatusOK, resp)
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
