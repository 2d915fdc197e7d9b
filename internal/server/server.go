// Package server provides the HTTP server for the SkyTrackr API. The
// server is handed a fully built, immutable catalog store and only ever
// reads from it; the construct-then-serve lifecycle means no handler
// takes a lock.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/skytrackr/skytrackr/pkg/catalog"
	"github.com/skytrackr/skytrackr/pkg/constants"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	store  *catalog.Store
	logger *zerolog.Logger
	config Config
	http   *http.Server
}

// New creates a new server instance over an already populated store.
func New(store *catalog.Store, logger *zerolog.Logger, cfg Config) *Server {
	// An empty prefix would collide with the unprefixed routes when
	// registering, so a zero-value Config gets the default.
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = constants.DefaultPathPrefix
	}

	s := &Server{
		store:  store,
		logger: logger,
		config: cfg,
	}

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.setupRouter(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe starts serving and blocks until the listener fails or
// Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info().
		Str("addr", s.http.Addr).
		Int("stars", s.store.Len()).
		Msg("Serving star catalog")

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server")
	return s.http.Shutdown(ctx)
}
