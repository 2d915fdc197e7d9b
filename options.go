package skytrackr

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/skytrackr/skytrackr/pkg/catalog"
	"github.com/skytrackr/skytrackr/pkg/constants"
	"github.com/skytrackr/skytrackr/pkg/names"
	"github.com/skytrackr/skytrackr/pkg/symbols"
)

// Option is a function that configures a build.
type Option func(*config) error

// config collects build inputs before New runs.
type config struct {
	catalogFile  string
	namesFile    string
	crossRefFile string

	records []catalog.StarRecord
	index   *names.Index
	tables  *symbols.Tables
	logger  *zerolog.Logger
}

func defaultConfig() *config {
	return &config{}
}

// WithDataDir points all three data files at their conventional names
// under one directory. Individual file options applied after this one
// override it.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		c.catalogFile = filepath.Join(dir, constants.DefaultCatalogFile)
		c.namesFile = filepath.Join(dir, constants.DefaultNamesFile)
		c.crossRefFile = filepath.Join(dir, constants.DefaultCrossRefFile)
		return nil
	}
}

// WithCatalogFile sets the primary star catalog CSV.
func WithCatalogFile(path string) Option {
	return func(c *config) error {
		c.catalogFile = path
		return nil
	}
}

// WithNamesFile sets the proper-name table JSON.
func WithNamesFile(path string) Option {
	return func(c *config) error {
		c.namesFile = path
		return nil
	}
}

// WithCrossRefFile sets the HD cross-reference CSV.
func WithCrossRefFile(path string) Option {
	return func(c *config) error {
		c.crossRefFile = path
		return nil
	}
}

// WithRecords supplies catalog records directly, bypassing the file load.
// The records are expected to already satisfy the catalog invariant
// (non-nil RA, Dec, and Vmag).
func WithRecords(records []catalog.StarRecord) Option {
	return func(c *config) error {
		c.records = records
		return nil
	}
}

// WithIndex supplies a prebuilt reference index, bypassing the auxiliary
// file loads.
func WithIndex(index *names.Index) Option {
	return func(c *config) error {
		c.index = index
		return nil
	}
}

// WithSymbolTables supplies symbol tables other than the embedded ones.
func WithSymbolTables(tables *symbols.Tables) Option {
	return func(c *config) error {
		c.tables = tables
		return nil
	}
}

// WithLogger sets the logger used during the build.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// loadNames reads the proper-name table, degrading to an empty table when
// the file is missing or malformed. Resolution still works without it,
// the cascade just never takes the proper-name branch.
func loadNames(path string, logger *zerolog.Logger) ([]names.NameEntry, int) {
	if path == "" {
		return nil, 0
	}
	entries, skipped, err := names.LoadNamesFile(path)
	if err != nil {
		logger.Warn().Str("path", path).Err(err).Msg("Proper-name table unavailable")
		return nil, 0
	}
	if skipped > 0 {
		logger.Debug().Str("path", path).Int("skipped", skipped).Msg("Skipped unparseable name rows")
	}
	return entries, skipped
}

// loadCrossRefs reads the cross-reference table with the same degradation
// rules as loadNames.
func loadCrossRefs(path string, logger *zerolog.Logger) ([]names.CrossRefEntry, int) {
	if path == "" {
		return nil, 0
	}
	entries, skipped, err := names.LoadCrossRefsFile(path)
	if err != nil {
		logger.Warn().Str("path", path).Err(err).Msg("Cross-reference table unavailable")
		return nil, 0
	}
	if skipped > 0 {
		logger.Debug().Str("path", path).Int("skipped", skipped).Msg("Skipped unparseable cross-reference rows")
	}
	return entries, skipped
}
