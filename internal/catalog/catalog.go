// Package catalog holds the set of tables loaded at startup and owns their
// teardown on shutdown.
package catalog

import (
	"fmt"

	"tabledb/internal/schemafile"
	"tabledb/internal/storage"
)

// Catalog is the ordered set of tables loaded from a schema file. It owns
// every table's pager for the lifetime of the process.
type Catalog struct {
	order  []string
	tables map[string]*storage.Table
}

// Open reads schemaPath and opens (creating if absent) each declared
// table's backing file under dataDir.
func Open(schemaPath, dataDir string) (*Catalog, error) {
	descriptors, err := schemafile.Load(schemaPath)
	if err != nil {
		return nil, err
	}

	c := &Catalog{tables: make(map[string]*storage.Table, len(descriptors))}
	for _, desc := range descriptors {
		if _, exists := c.tables[desc.Name]; exists {
			return nil, fmt.Errorf("schema %s: duplicate table %q", schemaPath, desc.Name)
		}
		table, err := storage.OpenTable(dataDir, desc.Name, desc.Columns)
		if err != nil {
			return nil, fmt.Errorf("opening table %q: %w", desc.Name, err)
		}
		c.tables[desc.Name] = table
		c.order = append(c.order, desc.Name)
	}
	return c, nil
}

// Table returns the named table, or false if the schema declares no such
// table.
func (c *Catalog) Table(name string) (*storage.Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

// Tables returns every table in schema declaration order.
func (c *Catalog) Tables() []*storage.Table {
	out := make([]*storage.Table, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.tables[name])
	}
	return out
}

// Close flushes and closes every table's backing file, in declaration
// order, returning the first error encountered but attempting to close
// every table regardless.
func (c *Catalog) Close() error {
	var firstErr error
	for _, name := range c.order {
		if err := c.tables[name].Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing table %q: %w", name, err)
		}
	}
	return firstErr
}
