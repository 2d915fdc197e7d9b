package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexLookups(t *testing.T) {
	idx := NewIndex(
		[]NameEntry{{HD: 1, Name: "Alpheratz"}},
		[]CrossRefEntry{{HD: 2, Bayer: "bet", Cst: "Cas"}},
	)

	name, ok := idx.LookupName(1)
	assert.True(t, ok)
	assert.Equal(t, "Alpheratz", name.Name)

	_, ok = idx.LookupName(2)
	assert.False(t, ok)

	xref, ok := idx.LookupCrossRef(2)
	assert.True(t, ok)
	assert.Equal(t, "bet", xref.Bayer)

	_, ok = idx.LookupCrossRef(1)
	assert.False(t, ok)
}

// TestIndexDuplicateKeys pins the tie-break: the first occurrence in row
// order wins, matching the source tables' behavior.
func TestIndexDuplicateKeys(t *testing.T) {
	idx := NewIndex(
		[]NameEntry{
			{HD: 10, Name: "First"},
			{HD: 10, Name: "Second"},
		},
		[]CrossRefEntry{
			{HD: 20, Fl: "1"},
			{HD: 20, Fl: "2"},
		},
	)

	name, ok := idx.LookupName(10)
	assert.True(t, ok)
	assert.Equal(t, "First", name.Name)

	xref, ok := idx.LookupCrossRef(20)
	assert.True(t, ok)
	assert.Equal(t, "1", xref.Fl)

	assert.Equal(t, 1, idx.NameCount())
	assert.Equal(t, 1, idx.CrossRefCount())
}

func TestIndexEmpty(t *testing.T) {
	idx := NewIndex(nil, nil)

	_, ok := idx.LookupName(1)
	assert.False(t, ok)
	_, ok = idx.LookupCrossRef(1)
	assert.False(t, ok)
	assert.Equal(t, 0, idx.NameCount())
	assert.Equal(t, 0, idx.CrossRefCount())
}
