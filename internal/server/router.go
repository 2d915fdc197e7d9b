package server

import (
	"net/http"

	"github.com/skytrackr/skytrackr/internal/server/handlers"
	"github.com/skytrackr/skytrackr/internal/server/middleware"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.store)
	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Public health endpoints
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	// Catalog endpoint: full enumeration only.
	mux.HandleFunc(prefix+"/stars", h.HandleListStars)

	// The original frontend fetched the catalog from /stars; keep the
	// unprefixed route working.
	mux.HandleFunc("/stars", h.HandleListStars)
}

// applyMiddleware wraps the mux in the standard middleware chain.
func (s *Server) applyMiddleware(mux *http.ServeMux) http.Handler {
	return middleware.Chain(
		middleware.Recovery(s.logger),
		middleware.Logger(s.logger),
		middleware.CORS(s.config.CORS),
	)(mux)
}
