// Package handlers provides HTTP request handlers for the SkyTrackr API.
package handlers

import (
	"github.com/skytrackr/skytrackr/pkg/catalog"
)

// Handlers provides access to all HTTP handlers. The store it reads from
// is immutable, so handlers never lock. Request-scoped logging comes from
// the context the middleware populates.
type Handlers struct {
	store *catalog.Store
}

// New creates a new Handlers instance over the given store.
func New(store *catalog.Store) *Handlers {
	return &Handlers{store: store}
}
