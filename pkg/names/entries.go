// Package names implements star display-name resolution: the reference
// index over the auxiliary naming tables, and the priority cascade that
// picks one designation per star.
//
// Naming conventions in observational astronomy are themselves a priority
// cascade: proper names are the most recognizable, Bayer and Flamsteed
// designations the next most standard, and Durchmusterung suffixes a last
// resort before the raw HD catalog number. The resolver encodes exactly
// that convention.
package names

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/skytrackr/skytrackr/pkg/errors"
)

// NameEntry is one row of the proper-name table.
type NameEntry struct {
	HD   int
	Name string
}

// CrossRefEntry is one row of the HD cross-reference table. All designation
// fields are optional; blank means the designation does not exist for that
// star.
type CrossRefEntry struct {
	HD    int
	Bayer string // Bayer letter code, e.g. "alf"
	Fl    string // Flamsteed number
	Cst   string // 3-letter IAU constellation abbreviation
	DM    string // Durchmusterung designation, e.g. "+20 2465B"
}

// flexInt is an HD key that tolerates both JSON numbers and numeric
// strings, which the proper-name table mixes freely.
type flexInt struct {
	value int
	ok    bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Unparseable keys skip the row rather than abort the load.
		return nil
	}
	f.value = v
	f.ok = true
	return nil
}

// LoadNames reads the proper-name table, a JSON array of {HD, Name}
// objects. Rows whose HD key does not parse as an integer are skipped and
// counted, never fatal.
func LoadNames(r io.Reader) ([]NameEntry, int, error) {
	var rows []struct {
		HD   flexInt `json:"HD"`
		Name string  `json:"Name"`
	}
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, 0, errors.NewParseError("name table", 0, "decoding JSON", err)
	}

	entries := make([]NameEntry, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if !row.HD.ok {
			skipped++
			continue
		}
		entries = append(entries, NameEntry{HD: row.HD.value, Name: strings.TrimSpace(row.Name)})
	}
	return entries, skipped, nil
}

// LoadNamesFile is LoadNames over a file on disk.
func LoadNamesFile(path string) ([]NameEntry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.WrapIO(err, "open", path)
	}
	defer f.Close()
	return LoadNames(f)
}

// LoadCrossRefs reads the HD cross-reference table, a CSV with a header
// row naming at least HD, Bayer, Fl, Cst, and DM columns. Rows whose HD
// does not parse as an integer are skipped and counted.
func LoadCrossRefs(r io.Reader) ([]CrossRefEntry, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, nil
		}
		return nil, 0, errors.NewParseError("cross-reference table", 1, "reading header", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var entries []CrossRefEntry
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		hd, err := strconv.Atoi(field("HD"))
		if err != nil {
			skipped++
			continue
		}

		entries = append(entries, CrossRefEntry{
			HD:    hd,
			Bayer: field("Bayer"),
			Fl:    field("Fl"),
			Cst:   field("Cst"),
			DM:    field("DM"),
		})
	}
	return entries, skipped, nil
}

// LoadCrossRefsFile is LoadCrossRefs over a file on disk.
func LoadCrossRefsFile(path string) ([]CrossRefEntry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.WrapIO(err, "open", path)
	}
	defer f.Close()
	return LoadCrossRefs(f)
}
