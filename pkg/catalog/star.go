// Package catalog defines the star catalog record model, the CSV loading
// layer that coerces and filters raw rows, and the read-only Store the
// serving layer queries.
package catalog

// StarRecord is one entry of the primary star catalog. Numeric fields are
// pointers because the source data leaves many of them blank; a nil pointer
// means the field is absent. Records retained by Load always have non-nil
// RAJ2000, DEJ2000, and Vmag.
type StarRecord struct {
	// Identifiers.
	HR    *int   `json:"HR"`
	Name  string `json:"Name"`
	HD    *int   `json:"HD"`
	ADS   string `json:"ADS"`
	VarID string `json:"VarID"`

	// Position and photometry, J2000 degrees.
	RAJ2000 *float64 `json:"RAJ2000"`
	DEJ2000 *float64 `json:"DEJ2000"`
	Vmag    *float64 `json:"Vmag"`
	BV      *float64 `json:"B-V"`

	// Classification.
	SpType    string   `json:"SpType"`
	NoteFlag  string   `json:"NoteFlag"`
	Parallax  *float64 `json:"Parallax"`
	NParallax string   `json:"n_Parallax"`

	// DisplayName is derived by the name resolver; empty until enrichment
	// has run.
	DisplayName string `json:"display_name"`
}

// HasPosition reports whether the record carries the three mandatory
// fields: right ascension, declination, and visual magnitude.
func (s *StarRecord) HasPosition() bool {
	return s.RAJ2000 != nil && s.DEJ2000 != nil && s.Vmag != nil
}
