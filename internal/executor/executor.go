// Package executor runs a parsed Statement against its bound table, one
// file per verb (insert/select/update/delete) plus a shared entry point
// and a row-printing helper.
package executor

import (
	"fmt"
	"io"

	"tabledb/internal/cache"
	"tabledb/internal/dberr"
	"tabledb/internal/parser"
)

// Executor runs statements and optionally consults a read cache for
// equality SELECTs.
type Executor struct {
	cache *cache.Cache
}

// New returns an Executor. c may be nil, disabling the read cache.
func New(c *cache.Cache) *Executor {
	return &Executor{cache: c}
}

// Run dispatches stmt to the matching verb handler, writing any SELECT
// output rows to w.
func (e *Executor) Run(stmt *parser.Statement, w io.Writer) error {
	switch {
	case stmt.Insert != nil:
		return e.executeInsert(stmt.Insert)
	case stmt.Select != nil:
		return e.executeSelect(stmt.Select, w)
	case stmt.Update != nil:
		return e.executeUpdate(stmt.Update)
	case stmt.Delete != nil:
		return e.executeDelete(stmt.Delete)
	default:
		return fmt.Errorf("%w: statement carries no verb", dberr.ErrInternal)
	}
}
