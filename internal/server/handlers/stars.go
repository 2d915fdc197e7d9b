package handlers

import (
	"net/http"

	"github.com/skytrackr/skytrackr/internal/server/response"
	"github.com/skytrackr/skytrackr/pkg/logging"
)

// HandleListStars handles GET /api/v1/stars. It returns every record of
// the enriched catalog in load order; the API deliberately offers no
// filtering, sorting, or pagination.
func (h *Handlers) HandleListStars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w)
		return
	}

	stars := h.store.List()
	logger := logging.FromContext(r.Context())
	logger.Debug().Int("count", len(stars)).Msg("Listing stars")
	response.OK(w, stars)
}
