// Package constants provides shared constants used throughout the skytrackr
// codebase: timeouts, default paths, file permissions, and server defaults.
package constants

import "time"

// Timeouts.
const (
	// DefaultReadTimeout is the HTTP server read timeout.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP server write timeout. Listing the full
	// catalog is the largest response the server produces; it is still an
	// in-memory encode, so this stays small.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultShutdownTimeout bounds graceful server shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

// Server defaults.
const (
	// DefaultHost is the address the server binds to.
	DefaultHost = "0.0.0.0"

	// DefaultPort is the port the server listens on.
	DefaultPort = 8000

	// DefaultPathPrefix is the versioned API path prefix.
	DefaultPathPrefix = "/api/v1"
)

// Data file defaults, relative to the data directory.
const (
	// DefaultCatalogFile is the primary star catalog.
	DefaultCatalogFile = "star_data.csv"

	// DefaultNamesFile is the proper-name table.
	DefaultNamesFile = "star_name_data.json"

	// DefaultCrossRefFile is the HD cross-reference table.
	DefaultCrossRefFile = "star_name_cross_reference.csv"
)

// File permissions.
const (
	// FilePermissions is the default permission for created files.
	FilePermissions = 0o644

	// DirPermissions is the default permission for created directories.
	DirPermissions = 0o755
)
