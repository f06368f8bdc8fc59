package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/dto"
	"github.com/jsamuelsen11/startup-scorer/internal/platform/logging"
	"github.com/jsamuelsen11/startup-scorer/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never consults upstream checks.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. It answers 503 while any check
// fails, which in practice means the Hunter circuit breaker is open.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, failing := dto.ToHealthResponse(h.registry.CheckAll(r.Context()))
	if len(failing) == 0 {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
		slog.Any("checks", failing),
	)
	writeJSON(w, http.StatusServiceUnavailable, resp)
}
