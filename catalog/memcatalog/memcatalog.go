// Package memcatalog is an in-memory catalog.Lookup used by tests and by
// lightweight embedding callers, grounded on the teacher's
// schemas.InfoSchema ("works as an in memory cache and doesn't handle any
// schema change... read-only") but trimmed to the single-database shape
// this spec's binder needs.
package memcatalog

import (
	"context"
	"strings"
	"sync"

	"github.com/kipsql-go/kipsql/catalog"
)

// Catalog is a read-only (after Load), case-insensitive in-memory table
// registry.
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]*catalog.TableCatalog
}

// New builds an empty catalog; use Put or LoadTOML to populate it before
// binding any query.
func New() *Catalog {
	return &Catalog{tables: make(map[string]*catalog.TableCatalog)}
}

// Put registers a table, overwriting any previous entry of the same name.
func (c *Catalog) Put(table *catalog.TableCatalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[strings.ToLower(table.Name)] = table
}

// TableCatalog implements catalog.Lookup.
func (c *Catalog) TableCatalog(_ context.Context, name catalog.TableName) (*catalog.TableCatalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[strings.ToLower(name)]
	return t, ok
}

var _ catalog.Lookup = (*Catalog)(nil)
