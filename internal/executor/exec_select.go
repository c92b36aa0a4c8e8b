package executor

import (
	"io"

	"tabledb/internal/parser"
	"tabledb/internal/predicate"
	"tabledb/internal/storage"
)

// executeSelect scans sel.Table start to end, printing every row that
// matches sel.Where (or every row, if sel.Where is nil), projected onto
// sel.Columns or the full row for SELECT *. Equality filters are served
// from and populate the read cache.
func (e *Executor) executeSelect(sel *parser.SelectStatement, w io.Writer) error {
	table := sel.Table
	columns := sel.Columns
	if sel.SelectAll {
		columns = table.Columns
	}

	if cached, ok := e.cachedEquality(sel); ok {
		for _, row := range cached {
			printRow(w, row, columns)
		}
		return nil
	}

	var matched [][]byte
	cursor := storage.TableStart(table)
	for !cursor.EndOfTable {
		row := storage.DeserializeRow(cursor.Value(), table)
		if sel.Where != nil && !predicate.Match(row, sel.Where) {
			cursor.Advance()
			continue
		}
		printRow(w, row, columns)
		if sel.Where != nil && sel.Where.Op == parser.OpEQ {
			matched = append(matched, row)
		}
		cursor.Advance()
	}

	e.cacheEquality(sel, matched)
	return nil
}

func (e *Executor) cachedEquality(sel *parser.SelectStatement) ([][]byte, bool) {
	if e.cache == nil || sel.Where == nil || sel.Where.Op != parser.OpEQ {
		return nil, false
	}
	return e.cache.Get(sel.Table.Name, sel.Where.Column.Name, string(sel.Where.Literal))
}

func (e *Executor) cacheEquality(sel *parser.SelectStatement, rows [][]byte) {
	if e.cache == nil || sel.Where == nil || sel.Where.Op != parser.OpEQ {
		return
	}
	e.cache.Set(sel.Table.Name, sel.Where.Column.Name, string(sel.Where.Literal), rows)
}
