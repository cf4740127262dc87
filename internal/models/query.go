// internal/models/query.go
package models

// QueryContext carries all caller-supplied inputs for one matching request.
type QueryContext struct {
	// Brief is the raw campaign brief text. Required.
	Brief string `json:"brief"`

	// Context is optional prior-conversation or budget/niche hints.
	Context string `json:"context,omitempty"`

	// BrandContext is the brand analysis string. It may embed a declared
	// category list in the form "brand_fit: <comma list>" and a budget
	// figure in the form "Budget: INR <amount>".
	BrandContext string `json:"brandContext,omitempty"`

	// ExplicitFilter holds exact-match constraints, e.g. follower_tier.
	ExplicitFilter map[string]string `json:"explicitFilter,omitempty"`
}

// SearchRequest is the validated inbound request for the matching pipeline.
type SearchRequest struct {
	Query     QueryContext
	TopK      int
	RequestID string
}
