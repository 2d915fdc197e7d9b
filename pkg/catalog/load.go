package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/skytrackr/skytrackr/pkg/errors"
)

// LoadStats summarizes one catalog load. Dropped rows are never surfaced
// individually; a bad row must not abort the rest of the catalog, but
// callers can still assert on drop rates.
type LoadStats struct {
	RowsRead    int `json:"rows_read"`
	RowsKept    int `json:"rows_kept"`
	RowsDropped int `json:"rows_dropped"`
}

// Load reads the primary star catalog from CSV. The first row is the
// header; fields are matched by trimmed header name. Numeric fields that
// fail to parse are treated as absent, and rows missing any of RAJ2000,
// DEJ2000, or Vmag are dropped and counted. Rows are returned in file
// order.
func Load(r io.Reader) ([]StarRecord, LoadStats, error) {
	var stats LoadStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, stats, errors.NewParseError("catalog", 0, "empty input", nil)
		}
		return nil, stats, errors.NewParseError("catalog", 1, "reading header", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var records []StarRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, not a malformed stream: count and move on.
			stats.RowsRead++
			stats.RowsDropped++
			continue
		}
		stats.RowsRead++

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		record := StarRecord{
			HR:          parseInt(field("HR")),
			Name:        field("Name"),
			HD:          parseInt(field("HD")),
			ADS:         field("ADS"),
			VarID:       field("VarID"),
			RAJ2000:     parseFloat(field("RAJ2000")),
			DEJ2000:     parseFloat(field("DEJ2000")),
			Vmag:        parseFloat(field("Vmag")),
			BV:          parseFloat(field("B-V")),
			SpType:      field("SpType"),
			NoteFlag:    field("NoteFlag"),
			Parallax:    parseFloat(field("Parallax")),
			NParallax:   field("n_Parallax"),
			DisplayName: field("display_name"),
		}

		if !record.HasPosition() {
			stats.RowsDropped++
			continue
		}

		records = append(records, record)
		stats.RowsKept++
	}

	return records, stats, nil
}

// LoadFile is Load over a file on disk.
func LoadFile(path string) ([]StarRecord, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, errors.WrapIO(err, "open", path)
	}
	defer f.Close()
	return Load(f)
}

// parseInt parses an integer field, returning nil when blank or malformed.
func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// parseFloat parses a float field, returning nil when blank or malformed.
func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
