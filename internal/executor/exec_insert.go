package executor

import (
	"tabledb/internal/dberr"
	"tabledb/internal/parser"
	"tabledb/internal/storage"
)

// executeInsert appends ins.Row past the table's current last row. The
// whole table must fit within TableMaxPages pages, so a full table is
// rejected before touching the cursor.
func (e *Executor) executeInsert(ins *parser.InsertStatement) error {
	table := ins.Table
	if table.NumRows >= table.MaxRows {
		return dberr.ErrTableFull
	}

	cursor := storage.TableEnd(table)
	storage.SerializeRow(ins.Row, cursor.Value())
	table.NumRows++

	if e.cache != nil {
		e.cache.Invalidate(table.Name)
	}
	return nil
}
