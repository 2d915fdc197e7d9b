// Package symbols provides the static display tables used when formatting
// star designations: Bayer letter codes to Greek (or ordinal) symbols, and
// IAU constellation abbreviations to full constellation names.
//
// Both lookups are total functions. A code missing from its table is
// returned unchanged, so callers never have to distinguish "unknown code"
// from "known code" when formatting.
package symbols

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/skytrackr/skytrackr/internal/embedded"
)

// Tables holds the immutable symbol maps. Build one with Load (embedded
// data) or New (explicit maps, mostly for tests) and share it freely;
// Tables is safe for concurrent use because it is never mutated after
// construction.
type Tables struct {
	bayer          map[string]string
	constellations map[string]string
}

var (
	loadOnce sync.Once
	loaded   *Tables
	loadErr  error
)

// Load parses the embedded YAML tables. The parse happens once per process;
// subsequent calls return the same Tables.
func Load() (*Tables, error) {
	loadOnce.Do(func() {
		loaded, loadErr = loadEmbedded()
	})
	return loaded, loadErr
}

// MustLoad is Load for callers that treat a broken embedded table as a
// programming error (the data is compiled into the binary).
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(fmt.Sprintf("symbols: embedded tables: %v", err))
	}
	return t
}

// New builds Tables from explicit maps. Keys are normalized the same way
// lookups are, so callers may pass codes in any case.
func New(bayer, constellations map[string]string) *Tables {
	t := &Tables{
		bayer:          make(map[string]string, len(bayer)),
		constellations: make(map[string]string, len(constellations)),
	}
	for code, symbol := range bayer {
		t.bayer[normalize(code)] = symbol
	}
	for abbr, name := range constellations {
		t.constellations[normalize(abbr)] = name
	}
	return t
}

// Bayer maps a Bayer letter code to its display symbol. The lookup trims
// whitespace and is case-insensitive; an unmapped code is returned trimmed
// but otherwise unchanged.
func (t *Tables) Bayer(code string) string {
	trimmed := strings.TrimSpace(code)
	if symbol, ok := t.bayer[normalize(trimmed)]; ok {
		return symbol
	}
	return trimmed
}

// Constellation maps a 3-letter IAU abbreviation to the full constellation
// name. Unmapped abbreviations are returned trimmed but unchanged.
func (t *Tables) Constellation(abbr string) string {
	trimmed := strings.TrimSpace(abbr)
	if name, ok := t.constellations[normalize(trimmed)]; ok {
		return name
	}
	return trimmed
}

// BayerCount reports how many Bayer codes are mapped.
func (t *Tables) BayerCount() int { return len(t.bayer) }

// ConstellationCount reports how many constellation abbreviations are mapped.
func (t *Tables) ConstellationCount() int { return len(t.constellations) }

func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func loadEmbedded() (*Tables, error) {
	bayer, err := parseTable("tables/bayer.yaml")
	if err != nil {
		return nil, err
	}
	constellations, err := parseTable("tables/constellations.yaml")
	if err != nil {
		return nil, err
	}
	return New(bayer, constellations), nil
}

func parseTable(path string) (map[string]string, error) {
	data, err := embedded.FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	table := make(map[string]string)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", path, err)
	}
	return table, nil
}
