package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNames(t *testing.T) {
	input := `[
		{"HD": 48915, "Name": "Sirius"},
		{"HD": "172167", "Name": "Vega"},
		{"HD": "not-a-number", "Name": "Ghost"},
		{"HD": null, "Name": "Orphan"},
		{"HD": 39801, "Name": "  Betelgeuse  "}
	]`

	entries, skipped, err := LoadNames(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	require.Len(t, entries, 3)
	assert.Equal(t, NameEntry{HD: 48915, Name: "Sirius"}, entries[0])
	assert.Equal(t, NameEntry{HD: 172167, Name: "Vega"}, entries[1])
	assert.Equal(t, NameEntry{HD: 39801, Name: "Betelgeuse"}, entries[2])
}

func TestLoadNamesMalformed(t *testing.T) {
	_, _, err := LoadNames(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoadCrossRefs(t *testing.T) {
	input := strings.Join([]string{
		"HD,Bayer,Fl,Cst,DM",
		"10144,alf,,Eri,-57 334",
		"186408,,16,Cyg,+50 2847",
		"bogus,alf,,Eri,",
		",,,,",
		"95689,alf,50,UMa,+62 1161",
	}, "\n")

	entries, skipped, err := LoadCrossRefs(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	require.Len(t, entries, 3)
	assert.Equal(t, CrossRefEntry{HD: 10144, Bayer: "alf", Cst: "Eri", DM: "-57 334"}, entries[0])
	assert.Equal(t, CrossRefEntry{HD: 186408, Fl: "16", Cst: "Cyg", DM: "+50 2847"}, entries[1])
	assert.Equal(t, CrossRefEntry{HD: 95689, Bayer: "alf", Fl: "50", Cst: "UMa", DM: "+62 1161"}, entries[2])
}

func TestLoadCrossRefsEmpty(t *testing.T) {
	entries, skipped, err := LoadCrossRefs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, skipped)
}

// TestLoadCrossRefsMissingColumns checks that absent optional columns read
// as empty strings rather than failing.
func TestLoadCrossRefsMissingColumns(t *testing.T) {
	input := "HD,Cst\n10144,Eri\n"

	entries, skipped, err := LoadCrossRefs(strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, entries, 1)
	assert.Equal(t, CrossRefEntry{HD: 10144, Cst: "Eri"}, entries[0])
}
