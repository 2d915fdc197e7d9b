package names

import (
	"github.com/skytrackr/skytrackr/pkg/catalog"
)

// EnrichStats summarizes one enrichment pass, counting how each record's
// display name was decided.
type EnrichStats struct {
	Records  int          `json:"records"`
	ByKind   map[Kind]int `json:"-"`
	NotFound int          `json:"not_found"`
}

// Enrich attaches a display name to every record, in place, preserving
// order. Records are independent of one another; re-running Enrich over an
// already enriched slice yields the same display names, because resolution
// reads only the HD number and the immutable reference tables.
func Enrich(records []catalog.StarRecord, resolver *Resolver) EnrichStats {
	stats := EnrichStats{
		Records: len(records),
		ByKind:  make(map[Kind]int),
	}
	for i := range records {
		resolution := resolver.Resolve(records[i].HD)
		records[i].DisplayName = resolution.Display()
		stats.ByKind[resolution.Kind]++
		if resolution.Kind == KindNotFound {
			stats.NotFound++
		}
	}
	return stats
}
