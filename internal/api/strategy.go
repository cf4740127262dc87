// internal/api/strategy.go
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"creator-match/internal/common/errors"
	"creator-match/internal/models"
	"creator-match/internal/strategy"
)

type strategyRequest struct {
	Budget      float64              `json:"budget"`
	Influencers []strategyInfluencer `json:"influencers"`
}

type strategyInfluencer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Niche          string   `json:"niche"`
	Followers      int64    `json:"followers"`
	EngagementRate *float64 `json:"engagementRate"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
}

type tierSummary struct {
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

type strategyResponse struct {
	Success bool                   `json:"success"`
	Tiers   map[string]tierSummary `json:"tiers"`
	Budget  strategy.BudgetPlan    `json:"budget"`
	KPIs    strategy.KPIForecast   `json:"kpis"`
	Risks   []strategy.Risk        `json:"risks"`
}

// Strategy handles POST /api/strategy.
func (h *handlers) Strategy(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		h.errs.HandleRequestError(w, r, errors.NewValidationFailedError("unreadable request body"))
		return
	}

	if err := h.strategyValidator.check(body); err != nil {
		h.errs.HandleRequestError(w, r, err)
		return
	}

	var req strategyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.errs.HandleRequestError(w, r, errors.NewValidationFailedError("invalid JSON body"))
		return
	}

	profiles := make([]models.CreatorProfile, 0, len(req.Influencers))
	for _, inf := range req.Influencers {
		p := models.CreatorProfile{
			ID:        inf.ID,
			Name:      inf.Name,
			Niche:     inf.Niche,
			Followers: inf.Followers,
			Email:     inf.Email,
			Phone:     inf.Phone,
		}
		if inf.EngagementRate != nil {
			p.EngagementRate = *inf.EngagementRate
			p.HasEngagement = true
		}
		profiles = append(profiles, p)
	}

	tiers := strategy.TierDistribution(profiles)
	summary := make(map[string]tierSummary, len(tiers))
	for tier, members := range tiers {
		pct := 0.0
		if len(profiles) > 0 {
			pct = float64(len(members)) / float64(len(profiles)) * 100
		}
		summary[tier] = tierSummary{Count: len(members), Pct: pct}
	}

	writeJSON(w, http.StatusOK, strategyResponse{
		Success: true,
		Tiers:   summary,
		Budget:  strategy.AllocateBudget(req.Budget, tiers),
		KPIs:    strategy.ForecastKPIs(profiles, req.Budget),
		Risks:   strategy.AssessRisks(profiles, req.Budget),
	})
}
