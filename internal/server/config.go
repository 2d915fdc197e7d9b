package server

import (
	"time"

	"github.com/skytrackr/skytrackr/internal/server/middleware"
	"github.com/skytrackr/skytrackr/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string

	// CORS settings
	CORS middleware.CORSConfig

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         constants.DefaultHost,
		Port:         constants.DefaultPort,
		PathPrefix:   constants.DefaultPathPrefix,
		CORS:         middleware.DefaultCORSConfig(),
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}
}
