package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrackr/skytrackr/pkg/catalog"
)

func floatPtr(v float64) *float64 { return &v }

func testRecords() []catalog.StarRecord {
	base := func(hd *int) catalog.StarRecord {
		return catalog.StarRecord{
			HD:      hd,
			RAJ2000: floatPtr(101.28),
			DEJ2000: floatPtr(-16.71),
			Vmag:    floatPtr(-1.46),
		}
	}
	return []catalog.StarRecord{
		base(intPtr(48915)), // proper name
		base(intPtr(100)),   // bayer
		base(intPtr(12345)), // catalog number
		base(nil),           // no HD at all
	}
}

func TestEnrich(t *testing.T) {
	r := testResolver(t)
	records := testRecords()

	stats := Enrich(records, r)

	assert.Equal(t, 4, stats.Records)
	assert.Equal(t, 1, stats.NotFound)
	assert.Equal(t, 1, stats.ByKind[KindProper])
	assert.Equal(t, 1, stats.ByKind[KindBayer])
	assert.Equal(t, 1, stats.ByKind[KindCatalogNumber])

	assert.Equal(t, "Sirius", records[0].DisplayName)
	assert.Equal(t, "α Eridanus", records[1].DisplayName)
	assert.Equal(t, "HD 12345", records[2].DisplayName)
	assert.Equal(t, "Star does not exist", records[3].DisplayName)

	// Every record ends up with a non-empty display name.
	for _, record := range records {
		assert.NotEmpty(t, record.DisplayName)
	}
}

// TestEnrichIdempotent re-runs enrichment over an already enriched slice
// and expects identical display names.
func TestEnrichIdempotent(t *testing.T) {
	r := testResolver(t)
	records := testRecords()

	Enrich(records, r)
	first := make([]string, len(records))
	for i, record := range records {
		first[i] = record.DisplayName
	}

	Enrich(records, r)
	for i, record := range records {
		assert.Equal(t, first[i], record.DisplayName)
	}
}

// TestEnrichPreservesOrder checks that enrichment never reorders records.
func TestEnrichPreservesOrder(t *testing.T) {
	r := testResolver(t)
	records := testRecords()
	hds := make([]*int, len(records))
	for i := range records {
		hds[i] = records[i].HD
	}

	Enrich(records, r)

	require.Len(t, records, len(hds))
	for i := range records {
		assert.Equal(t, hds[i], records[i].HD)
	}
}
