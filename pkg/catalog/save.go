package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/skytrackr/skytrackr/pkg/constants"
	"github.com/skytrackr/skytrackr/pkg/errors"
)

// csvHeader is the column order written by Save. It mirrors the source
// catalog's columns plus the derived display_name.
var csvHeader = []string{
	"HR", "Name", "HD", "ADS", "VarID",
	"RAJ2000", "DEJ2000", "Vmag", "B-V",
	"SpType", "NoteFlag", "Parallax", "n_Parallax",
	"display_name",
}

// Save writes records as CSV in the same column layout Load reads, so a
// saved catalog round-trips through Load.
func Save(w io.Writer, records []StarRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.WrapIO(err, "write", "csv header")
	}
	for i := range records {
		if err := writer.Write(records[i].csvRow()); err != nil {
			return errors.WrapIO(err, "write", "csv row")
		}
	}
	writer.Flush()
	return errors.WrapIO(writer.Error(), "flush", "csv")
}

// SaveFile is Save to a file on disk.
func SaveFile(path string, records []StarRecord) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO(err, "create", path)
	}
	if err := Save(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return errors.WrapIO(f.Close(), "close", path)
}

// csvRow renders the record in csvHeader order. Absent numeric fields
// render as empty cells, matching the source data.
func (s *StarRecord) csvRow() []string {
	return []string{
		formatInt(s.HR),
		s.Name,
		formatInt(s.HD),
		s.ADS,
		s.VarID,
		formatFloat(s.RAJ2000),
		formatFloat(s.DEJ2000),
		formatFloat(s.Vmag),
		formatFloat(s.BV),
		s.SpType,
		s.NoteFlag,
		formatFloat(s.Parallax),
		s.NParallax,
		s.DisplayName,
	}
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
