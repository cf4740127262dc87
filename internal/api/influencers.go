// internal/api/influencers.go
package api

import (
	"net/http"
	"strconv"

	"creator-match/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type listResponse struct {
	Success     bool                    `json:"success"`
	Page        int                     `json:"page"`
	Limit       int                     `json:"limit"`
	Total       int                     `json:"total"`
	Influencers []models.CreatorProfile `json:"influencers"`
}

// ListInfluencers handles GET /api/influencers.
func (h *handlers) ListInfluencers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if raw := q.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	limit := defaultPageSize
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = clampInt(n, 1, maxPageSize)
		}
	}

	profiles, total, err := h.directory.List(r.Context(), page, limit)
	if err != nil {
		h.errs.HandleRequestError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Page:        page,
		Limit:       limit,
		Total:       total,
		Influencers: profiles,
	})
}
