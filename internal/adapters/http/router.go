// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	scoreHandler *handlers.ScoreHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scores/{domain}", scoreHandler.GetScore)

		// Batch reports, JSON list or CSV upload. ?format=csv exports.
		r.Post("/reports", scoreHandler.CreateReport)
		r.Post("/reports/csv", scoreHandler.CreateReportFromCSV)

		r.Get("/scoring/config", scoreHandler.GetScoringConfig)
	})

	return r
}
