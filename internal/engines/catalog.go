// Package engines is the catalog of known rule systems. The built-in
// worlds are registered at init; additional worlds can be loaded from
// YAML schema files at startup.
package engines

import (
	"sort"
	"sync"

	"github.com/sagaforge/saga-api/internal/entities/engine"
	"github.com/sagaforge/saga-api/internal/errors"
)

// Catalog holds registered engine schemas keyed by id. Registration
// happens at startup; lookups afterward are read-only and safe for
// concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	schemas map[string]*engine.Schema
}

// New creates a catalog preloaded with the built-in engines
func New() *Catalog {
	c := &Catalog{schemas: make(map[string]*engine.Schema)}
	for _, s := range []*engine.Schema{Classic(), Outworlder(), Tactical()} {
		// built-ins are covered by tests; a failure here is a programming error
		if err := c.Register(s); err != nil {
			panic(err)
		}
	}
	return c
}

// NewEmpty creates a catalog with no engines, for tests and tooling
func NewEmpty() *Catalog {
	return &Catalog{schemas: make(map[string]*engine.Schema)}
}

// Register validates and adds a schema to the catalog
func (c *Catalog) Register(s *engine.Schema) error {
	if err := s.Validate(); err != nil {
		return errors.Wrapf(err, "invalid engine schema %q", s.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.schemas[s.ID]; exists {
		return errors.AlreadyExists("engine already registered").WithMeta("engine_id", s.ID)
	}
	c.schemas[s.ID] = s
	return nil
}

// Get returns the schema for an engine id. Unknown engines are a
// recoverable NotFound, surfaced to callers as "engine not found" rather
// than a crash.
func (c *Catalog) Get(engineID string) (*engine.Schema, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.schemas[engineID]
	if !ok {
		return nil, errors.NotFoundf("engine %q not found", engineID)
	}
	return s, nil
}

// List returns all registered schemas ordered by id
func (c *Catalog) List() []*engine.Schema {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*engine.Schema, 0, len(c.schemas))
	for _, s := range c.schemas {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
