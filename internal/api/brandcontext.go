// internal/api/brandcontext.go
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"creator-match/internal/brand"
	"creator-match/internal/common/errors"
)

const maxRequestBody = 64 * 1024

type brandContextRequest struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// BrandContext handles POST /api/brand-context.
func (h *handlers) BrandContext(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		h.errs.HandleRequestError(w, r, errors.NewValidationFailedError("unreadable request body"))
		return
	}

	if err := h.brandValidator.check(body); err != nil {
		h.errs.HandleRequestError(w, r, err)
		return
	}

	var req brandContextRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.errs.HandleRequestError(w, r, errors.NewValidationFailedError("invalid JSON body"))
		return
	}

	result, err := h.brand.Analyze(r.Context(), req.URL, req.Description)
	if err != nil {
		h.errs.HandleRequestError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, brandContextResponse{Success: true, Result: result})
}

type brandContextResponse struct {
	Success bool          `json:"success"`
	Result  *brand.Result `json:"result"`
}
