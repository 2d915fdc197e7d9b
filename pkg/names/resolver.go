package names

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/skytrackr/skytrackr/pkg/symbols"
)

// Kind identifies which naming convention produced a Resolution.
type Kind int

// Resolution kinds, in cascade priority order.
const (
	// KindNotFound means no HD number was available to resolve.
	KindNotFound Kind = iota
	// KindProper is a proper name from the primary-name table.
	KindProper
	// KindBayer is a Bayer letter plus constellation.
	KindBayer
	// KindFlamsteed is a Flamsteed number plus constellation.
	KindFlamsteed
	// KindDurchmusterung is a constellation plus DM companion letter.
	KindDurchmusterung
	// KindCatalogNumber is the raw HD catalog number fallback.
	KindCatalogNumber
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindProper:
		return "proper"
	case KindBayer:
		return "bayer"
	case KindFlamsteed:
		return "flamsteed"
	case KindDurchmusterung:
		return "durchmusterung"
	case KindCatalogNumber:
		return "catalog-number"
	default:
		return "not-found"
	}
}

// notFoundDisplay is the display form of an unresolvable star. It exists
// only at the serialization edge; the resolver itself returns the tagged
// KindNotFound instead of a sentinel string.
const notFoundDisplay = "Star does not exist"

// Resolution is the tagged result of one resolve call. Name is empty only
// for KindNotFound.
type Resolution struct {
	Kind Kind
	Name string
}

// Display renders the resolution as the catalog's display_name string.
func (r Resolution) Display() string {
	if r.Kind == KindNotFound {
		return notFoundDisplay
	}
	return r.Name
}

// Resolver picks a display name for a star from the reference index and
// the symbol tables. Both are read-only, so one Resolver serves any number
// of concurrent callers.
type Resolver struct {
	index  *Index
	tables *symbols.Tables
}

// NewResolver creates a Resolver over the given index and symbol tables.
func NewResolver(index *Index, tables *symbols.Tables) *Resolver {
	return &Resolver{index: index, tables: tables}
}

// Resolve picks the display name for a star by HD number. It is total:
// every input, including a nil HD, yields a Resolution, and the catalog
// number branch guarantees a name for any HD the reference tables have
// never heard of.
//
// The cascade, first match wins:
//  1. nil HD: not found
//  2. proper name from the primary-name table
//  3. Bayer letter + constellation
//  4. Flamsteed number + constellation
//  5. constellation + trailing DM companion letter
//  6. "HD <n>"
func (r *Resolver) Resolve(hd *int) Resolution {
	if hd == nil {
		return Resolution{Kind: KindNotFound}
	}

	if entry, ok := r.index.LookupName(*hd); ok {
		if name := strings.TrimSpace(entry.Name); name != "" {
			return Resolution{Kind: KindProper, Name: name}
		}
	}

	if xref, ok := r.index.LookupCrossRef(*hd); ok {
		bayer := strings.TrimSpace(xref.Bayer)
		fl := strings.TrimSpace(xref.Fl)
		cst := strings.TrimSpace(xref.Cst)
		dm := strings.TrimSpace(xref.DM)

		if bayer != "" && cst != "" {
			symbol := r.tables.Bayer(strings.ToLower(bayer))
			return Resolution{Kind: KindBayer, Name: symbol + " " + r.tables.Constellation(cst)}
		}

		if fl != "" {
			name := strings.TrimRight(fl+" "+r.tables.Constellation(cst), " ")
			return Resolution{Kind: KindFlamsteed, Name: name}
		}

		if letter, ok := dmCompanionLetter(dm); ok {
			name := strings.TrimSpace(r.tables.Constellation(cst) + " " + letter)
			return Resolution{Kind: KindDurchmusterung, Name: name}
		}
	}

	return Resolution{Kind: KindCatalogNumber, Name: "HD " + strconv.Itoa(*hd)}
}

// dmCompanionLetter extracts the trailing companion letter of a trimmed DM
// designation, if it has one.
func dmCompanionLetter(dm string) (string, bool) {
	if dm == "" {
		return "", false
	}
	runes := []rune(dm)
	last := runes[len(runes)-1]
	if !unicode.IsLetter(last) {
		return "", false
	}
	return string(last), true
}
