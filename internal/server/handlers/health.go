package handlers

import (
	"net/http"

	"github.com/skytrackr/skytrackr/internal/server/response"
)

// HandleHealth handles GET /health, the liveness probe.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "skytrackr-api",
		"version": "v1",
	})
}

// HandleReady handles GET /api/v1/ready. The store is populated before the
// server starts listening, so readiness only reports the catalog size.
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	if h.store == nil {
		response.ServiceUnavailable(w, "Catalog not available")
		return
	}

	response.OK(w, map[string]any{
		"status": "ready",
		"stars":  h.store.Len(),
	})
}
