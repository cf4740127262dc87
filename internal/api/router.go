// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"creator-match/internal/brand"
	"creator-match/internal/common/errors"
	"creator-match/internal/common/logger"
	"creator-match/internal/directory"
	"creator-match/internal/engine"
)

// Dependencies bundles everything the HTTP layer needs. Pinger fields are
// optional; a nil pinger is reported as "disabled" by the health endpoint.
type Dependencies struct {
	Engine    *engine.Engine
	Directory *directory.Store
	Brand     *brand.Analyzer
	Logger    logger.Logger

	RedisPinger    Pinger
	PostgresPinger Pinger
	SearchPinger   Pinger
}

// NewRouter wires the full HTTP surface: search, directory, brand analysis,
// strategy planning, health and metrics.
func NewRouter(deps Dependencies) (http.Handler, error) {
	h, err := newHandlers(deps)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestID)
	r.Use(instrument)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Mount("/debug", chimiddleware.Profiler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/search-influencers", h.Search)
		r.Get("/influencers", h.ListInfluencers)
		r.Post("/brand-context", h.BrandContext)
		r.Post("/strategy", h.Strategy)
	})

	return r, nil
}

type handlers struct {
	engine    *engine.Engine
	directory *directory.Store
	brand     *brand.Analyzer
	logger    logger.Logger
	errs      *errors.ErrorHandler
	health    *healthChecker

	brandValidator    *validatorWrapper
	strategyValidator *validatorWrapper
}

func newHandlers(deps Dependencies) (*handlers, error) {
	brandV, err := newValidator(brandContextSchema)
	if err != nil {
		return nil, err
	}
	strategyV, err := newValidator(strategySchema)
	if err != nil {
		return nil, err
	}

	return &handlers{
		engine:    deps.Engine,
		directory: deps.Directory,
		brand:     deps.Brand,
		logger:    deps.Logger.WithFields(map[string]interface{}{"component": "api"}),
		errs:      errors.NewErrorHandler(deps.Logger),
		health: &healthChecker{
			redis:    deps.RedisPinger,
			postgres: deps.PostgresPinger,
			search:   deps.SearchPinger,
		},
		brandValidator:    brandV,
		strategyValidator: strategyV,
	}, nil
}
