package names

// Index holds O(1) lookup structures over the auxiliary naming tables.
// It is built once and read-only thereafter, so it is safe to share
// across concurrent resolution calls.
type Index struct {
	names    map[int]NameEntry
	crossRef map[int]CrossRefEntry
}

// NewIndex builds an Index from the raw table rows. Duplicate HD keys keep
// the first occurrence in row order, matching the source tables' "first
// row wins" convention.
func NewIndex(names []NameEntry, crossRefs []CrossRefEntry) *Index {
	idx := &Index{
		names:    make(map[int]NameEntry, len(names)),
		crossRef: make(map[int]CrossRefEntry, len(crossRefs)),
	}
	for _, entry := range names {
		if _, seen := idx.names[entry.HD]; !seen {
			idx.names[entry.HD] = entry
		}
	}
	for _, entry := range crossRefs {
		if _, seen := idx.crossRef[entry.HD]; !seen {
			idx.crossRef[entry.HD] = entry
		}
	}
	return idx
}

// LookupName returns the proper-name entry for an HD number.
func (idx *Index) LookupName(hd int) (NameEntry, bool) {
	entry, ok := idx.names[hd]
	return entry, ok
}

// LookupCrossRef returns the cross-reference entry for an HD number.
func (idx *Index) LookupCrossRef(hd int) (CrossRefEntry, bool) {
	entry, ok := idx.crossRef[hd]
	return entry, ok
}

// NameCount returns the number of indexed proper names.
func (idx *Index) NameCount() int { return len(idx.names) }

// CrossRefCount returns the number of indexed cross-reference entries.
func (idx *Index) CrossRefCount() int { return len(idx.crossRef) }
