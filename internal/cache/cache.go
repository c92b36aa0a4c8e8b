// Package cache wraps ristretto as a read-through cache for equality
// WHERE-clause SELECT results.
//
// The pager's fixed page-slot array is a table's authoritative storage —
// this cache never sits in front of it. It only memoizes the executor's
// already-materialized SELECT output, keyed by table name, filter column,
// and literal, so a repeated point lookup skips the table scan entirely.
package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache memoizes SELECT results. Every table shares one generation
// counter per name; bumping a table's generation invalidates every key
// derived from it without ristretto needing prefix-aware eviction, which
// it does not support.
type Cache struct {
	rc          *ristretto.Cache[string, [][]byte]
	generations map[string]uint64
}

// New builds a Cache sized for approximately maxItems cached result sets.
func New(maxItems int64) (*Cache, error) {
	if maxItems <= 0 {
		maxItems = 1024
	}
	rc, err := ristretto.NewCache(&ristretto.Config[string, [][]byte]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{rc: rc, generations: make(map[string]uint64)}, nil
}

func (c *Cache) key(table, column, literal string) string {
	return fmt.Sprintf("%s#%d\x00%s\x00%s", table, c.generations[table], column, literal)
}

// Get returns the cached rows for an equality lookup on table.column =
// literal, if present.
func (c *Cache) Get(table, column, literal string) ([][]byte, bool) {
	return c.rc.Get(c.key(table, column, literal))
}

// Set stores rows for an equality lookup on table.column = literal.
func (c *Cache) Set(table, column, literal string, rows [][]byte) {
	c.rc.SetWithTTL(c.key(table, column, literal), rows, 1, 0)
	c.rc.Wait()
}

// Invalidate bumps table's generation, making every previously cached
// entry for it unreachable. Called after INSERT, UPDATE, and DELETE.
func (c *Cache) Invalidate(table string) {
	c.generations[table]++
}

// Close releases ristretto's background goroutines.
func (c *Cache) Close() {
	c.rc.Close()
}
