package catalog

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaveRoundTrip writes records and reads them back through Load.
func TestSaveRoundTrip(t *testing.T) {
	records := testStoreRecords()

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, records))

	loaded, stats, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, len(records), stats.RowsKept)
	require.Len(t, loaded, len(records))

	for i := range records {
		assert.Equal(t, *records[i].HD, *loaded[i].HD)
		assert.Equal(t, *records[i].RAJ2000, *loaded[i].RAJ2000)
		assert.Equal(t, records[i].DisplayName, loaded[i].DisplayName)
	}
}

// TestSaveAbsentFields checks that nil numerics render as empty cells.
func TestSaveAbsentFields(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	records := []StarRecord{
		{RAJ2000: f(1), DEJ2000: f(2), Vmag: f(3), DisplayName: "HD ?"},
	}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], ",,"), "absent HR and Name should be empty cells: %q", lines[1])
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.csv")
	require.NoError(t, SaveFile(path, testStoreRecords()))

	loaded, _, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}
