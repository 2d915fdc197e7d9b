// Package app provides the application context for the skytrackr CLI:
// configuration loading, logger construction, and the lazily built
// catalog instance the commands share.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/skytrackr/skytrackr"
)

// App represents the skytrackr application with its dependencies. It
// centralizes configuration, logging, and the built catalog so commands
// do not wire these themselves.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger

	// Catalog instance (lazy-initialized, singleton)
	mu       sync.Mutex
	instance skytrackr.Skytrackr
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(config)

	return &App{
		version: version,
		commit:  commit,
		date:    date,
		config:  config,
		logger:  &logger,
	}, nil
}

// Version returns the version string.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Skytrackr returns the built catalog, constructing it on first use. The
// build is a one-shot batch: catalog load, reference index, enrichment.
func (a *App) Skytrackr() (skytrackr.Skytrackr, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.instance != nil {
		return a.instance, nil
	}

	opts := []skytrackr.Option{
		skytrackr.WithLogger(a.logger),
		skytrackr.WithDataDir(a.config.DataDir),
	}
	if a.config.CatalogFile != "" {
		opts = append(opts, skytrackr.WithCatalogFile(a.config.CatalogFile))
	}
	if a.config.NamesFile != "" {
		opts = append(opts, skytrackr.WithNamesFile(a.config.NamesFile))
	}
	if a.config.CrossRefFile != "" {
		opts = append(opts, skytrackr.WithCrossRefFile(a.config.CrossRefFile))
	}

	instance, err := skytrackr.New(opts...)
	if err != nil {
		return nil, err
	}
	a.instance = instance
	return instance, nil
}
