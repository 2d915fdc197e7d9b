// Package skytrackr builds an enriched star catalog and exposes it through
// a read-only store.
//
// The lifecycle is construct fully, then serve: New loads the primary
// catalog and the auxiliary naming tables, builds the reference index,
// resolves a display name for every record, and seals the result in a
// catalog.Store. Nothing mutates after New returns, so the store may be
// handed to any number of concurrent readers.
package skytrackr

import (
	"fmt"

	"github.com/skytrackr/skytrackr/pkg/catalog"
	"github.com/skytrackr/skytrackr/pkg/logging"
	"github.com/skytrackr/skytrackr/pkg/names"
	"github.com/skytrackr/skytrackr/pkg/symbols"
)

// Skytrackr provides read access to the enriched catalog and the
// statistics gathered while building it.
type Skytrackr interface {
	// Store returns the enriched, read-only catalog store.
	Store() *catalog.Store

	// Stats returns the build statistics.
	Stats() BuildStats
}

// BuildStats aggregates the diagnostics of one build: rows dropped during
// the catalog load, reference rows skipped for unparseable keys, and how
// each display name was decided. Drops are counted, never surfaced per
// row.
type BuildStats struct {
	Catalog          catalog.LoadStats `json:"catalog"`
	NamesSkipped     int               `json:"names_skipped"`
	NamesIndexed     int               `json:"names_indexed"`
	CrossRefsSkipped int               `json:"crossrefs_skipped"`
	CrossRefsIndexed int               `json:"crossrefs_indexed"`
	Enrichment       names.EnrichStats `json:"enrichment"`
}

// skytrackr is the internal implementation of the Skytrackr interface
type skytrackr struct {
	store *catalog.Store
	stats BuildStats
}

// New builds an enriched catalog with the given options.
//
// The primary catalog is required, either as a file (WithCatalogFile) or
// as records (WithRecords). The auxiliary tables are optional: a missing
// or unreadable table degrades resolution gracefully, every cascade
// branch past the missing source is still attempted.
func New(opts ...Option) (Skytrackr, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}
	logger := cfg.logger
	if logger == nil {
		def := logging.Default()
		logger = &def
	}

	st := &skytrackr{}

	// Primary catalog. This is the one load that must succeed.
	records := cfg.records
	if records == nil {
		if cfg.catalogFile == "" {
			return nil, fmt.Errorf("no catalog source: provide WithCatalogFile or WithRecords")
		}
		loaded, stats, err := catalog.LoadFile(cfg.catalogFile)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		st.stats.Catalog = stats
		logger.Info().
			Str("path", cfg.catalogFile).
			Int("kept", stats.RowsKept).
			Int("dropped", stats.RowsDropped).
			Msg("Catalog loaded")
		records = loaded
	} else {
		st.stats.Catalog = catalog.LoadStats{
			RowsRead: len(records),
			RowsKept: len(records),
		}
	}

	// Symbol tables.
	tables := cfg.tables
	if tables == nil {
		var err error
		tables, err = symbols.Load()
		if err != nil {
			return nil, fmt.Errorf("loading symbol tables: %w", err)
		}
	}

	// Reference index over the auxiliary tables.
	index := cfg.index
	if index == nil {
		nameEntries, namesSkipped := loadNames(cfg.namesFile, logger)
		crossRefs, crossRefsSkipped := loadCrossRefs(cfg.crossRefFile, logger)
		index = names.NewIndex(nameEntries, crossRefs)
		st.stats.NamesSkipped = namesSkipped
		st.stats.CrossRefsSkipped = crossRefsSkipped
	}
	st.stats.NamesIndexed = index.NameCount()
	st.stats.CrossRefsIndexed = index.CrossRefCount()

	// Resolve every record, then seal the store.
	resolver := names.NewResolver(index, tables)
	st.stats.Enrichment = names.Enrich(records, resolver)
	st.store = catalog.NewStore(records)

	logger.Info().
		Int("records", st.store.Len()).
		Int("names_indexed", st.stats.NamesIndexed).
		Int("crossrefs_indexed", st.stats.CrossRefsIndexed).
		Msg("Catalog enriched")

	return st, nil
}

// Store returns the enriched, read-only catalog store.
func (s *skytrackr) Store() *catalog.Store {
	return s.store
}

// Stats returns the build statistics.
func (s *skytrackr) Stats() BuildStats {
	return s.stats
}
