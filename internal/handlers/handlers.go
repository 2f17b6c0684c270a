package handlers

import (
	"photoframe/internal/index"
	"photoframe/internal/metadata"
	"photoframe/internal/screen"
)

// Handlers holds the request-handling dependencies. All fields are set at
// construction and read-only afterwards.
type Handlers struct {
	index      *index.Index
	cache      *metadata.Cache
	state      *screen.StateFile
	intervalMS int
}

// New creates the handler set over the startup-built index.
func New(ix *index.Index, cache *metadata.Cache, state *screen.StateFile, intervalMS int) *Handlers {
	return &Handlers{
		index:      ix,
		cache:      cache,
		state:      state,
		intervalMS: intervalMS,
	}
}
