package catalog

// Store holds the enriched record set for the lifetime of the serving
// process. The lifecycle is construct fully, then serve: NewStore copies
// the records it is given and nothing mutates them afterward, so any
// number of concurrent readers is safe without locking.
type Store struct {
	records []StarRecord
}

// NewStore creates a Store over a copy of the given records, preserving
// their order.
func NewStore(records []StarRecord) *Store {
	copied := make([]StarRecord, len(records))
	copy(copied, records)
	return &Store{records: copied}
}

// List returns all records in original load order. The returned slice is a
// copy; callers may not reach the Store's backing array through it.
func (s *Store) List() []StarRecord {
	out := make([]StarRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records held.
func (s *Store) Len() int {
	return len(s.records)
}
