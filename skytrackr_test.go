package skytrackr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrackr/skytrackr/pkg/catalog"
	"github.com/skytrackr/skytrackr/pkg/logging"
	"github.com/skytrackr/skytrackr/pkg/names"
)

const testCatalogCSV = `HR,Name,HD,ADS,VarID,RAJ2000,DEJ2000,Vmag,B-V,SpType,NoteFlag,Parallax,n_Parallax
2491,,48915,5423,,101.287,-16.716,-1.46,0.00,A1Vm,*,0.375,
472,,10144,,,24.429,-57.237,0.46,-0.16,B3Vpe,*,0.023,
8085,,201091,14636,V1803 Cyg,316.724,38.749,5.21,1.18,K5V,*,0.294,
9000,,,,,,,,,,,,
`

const testNamesJSON = `[{"HD": 48915, "Name": "Sirius"}]`

const testCrossRefCSV = `HD,Bayer,Fl,Cst,DM
10144,alf,,Eri,-57 334
201091,,61,Cyg,+38 4343
`

func writeTestData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"star_data.csv":                 testCatalogCSV,
		"star_name_data.json":           testNamesJSON,
		"star_name_cross_reference.csv": testCrossRefCSV,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

// TestNewFromFiles builds the full pipeline from files on disk.
func TestNewFromFiles(t *testing.T) {
	dir := writeTestData(t)

	logger := logging.Nop
	st, err := New(WithDataDir(dir), WithLogger(&logger))
	require.NoError(t, err)

	store := st.Store()
	require.Equal(t, 3, store.Len())

	byHD := map[int]string{}
	for _, record := range store.List() {
		require.NotNil(t, record.HD)
		assert.True(t, record.HasPosition())
		assert.NotEmpty(t, record.DisplayName)
		byHD[*record.HD] = record.DisplayName
	}

	assert.Equal(t, "Sirius", byHD[48915])
	assert.Equal(t, "α Eridanus", byHD[10144])
	assert.Equal(t, "61 Cygnus", byHD[201091])

	stats := st.Stats()
	assert.Equal(t, 4, stats.Catalog.RowsRead)
	assert.Equal(t, 1, stats.Catalog.RowsDropped)
	assert.Equal(t, 1, stats.NamesIndexed)
	assert.Equal(t, 2, stats.CrossRefsIndexed)
}

// TestNewMissingAuxiliaryTables checks graceful degradation: with no
// reference data every record falls through to the HD number.
func TestNewMissingAuxiliaryTables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "star_data.csv"), []byte(testCatalogCSV), 0o644))

	logger := logging.Nop
	st, err := New(WithDataDir(dir), WithLogger(&logger))
	require.NoError(t, err)

	for _, record := range st.Store().List() {
		assert.Contains(t, record.DisplayName, "HD ")
	}
	assert.Zero(t, st.Stats().NamesIndexed)
	assert.Zero(t, st.Stats().CrossRefsIndexed)
}

// TestNewMissingCatalog checks that the primary catalog is required.
func TestNewMissingCatalog(t *testing.T) {
	logger := logging.Nop

	_, err := New(WithLogger(&logger))
	assert.Error(t, err)

	_, err = New(WithCatalogFile(filepath.Join(t.TempDir(), "absent.csv")), WithLogger(&logger))
	assert.Error(t, err)
}

// TestNewWithRecords bypasses the file loads entirely.
func TestNewWithRecords(t *testing.T) {
	hd := func(v int) *int { return &v }
	f := func(v float64) *float64 { return &v }
	records := []catalog.StarRecord{
		{HD: hd(48915), RAJ2000: f(101.287), DEJ2000: f(-16.716), Vmag: f(-1.46)},
		{HD: nil, RAJ2000: f(0), DEJ2000: f(0), Vmag: f(0)},
	}
	index := names.NewIndex([]names.NameEntry{{HD: 48915, Name: "Sirius"}}, nil)

	logger := logging.Nop
	st, err := New(WithRecords(records), WithIndex(index), WithLogger(&logger))
	require.NoError(t, err)

	listed := st.Store().List()
	require.Len(t, listed, 2)
	assert.Equal(t, "Sirius", listed[0].DisplayName)
	assert.Equal(t, "Star does not exist", listed[1].DisplayName)
	assert.Equal(t, 1, st.Stats().Enrichment.NotFound)
}
