// internal/api/health.go
package api

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type healthChecker struct {
	redis    Pinger
	postgres Pinger
	search   Pinger
}

type healthResponse struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Dependencies map[string]string `json:"dependencies"`
}

// Health handles GET /health. Degraded means at least one dependency failed
// its ping; the endpoint still answers 200 so load balancers keep routing
// while the engine degrades gracefully.
func (h *handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := map[string]string{
		"redis":         h.health.check(ctx, h.health.redis),
		"postgres":      h.health.check(ctx, h.health.postgres),
		"elasticsearch": h.health.check(ctx, h.health.search),
	}

	status := "healthy"
	for _, s := range deps {
		if s != "ok" && s != "disabled" {
			status = "degraded"
			break
		}
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:       status,
		Service:      "creator-match",
		Dependencies: deps,
	})
}

func (hc *healthChecker) check(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return err.Error()
	}
	return "ok"
}
