package executor

import (
	"bytes"

	"tabledb/internal/parser"
	"tabledb/internal/predicate"
	"tabledb/internal/storage"
)

// executeDelete zeroes every row matching del.Where, then compacts the
// table so no all-zero hole survives between two live rows: pass one marks
// holes, pass two shifts every subsequent live row down into the earliest
// open hole.
func (e *Executor) executeDelete(del *parser.DeleteStatement) error {
	table := del.Table
	deleted := 0

	cursor := storage.TableStart(table)
	for !cursor.EndOfTable {
		rowBytes := cursor.Value()
		row := storage.DeserializeRow(rowBytes, table)
		if predicate.Match(row, &del.Where) {
			clear(rowBytes)
			deleted++
		}
		cursor.Advance()
	}

	if deleted > 0 {
		compactHoles(table)
		table.NumRows -= deleted
	}

	if e.cache != nil {
		e.cache.Invalidate(table.Name)
	}
	return nil
}

// compactHoles walks the table once, tracking the row number of the
// earliest zeroed row seen (holeRow, -1 meaning none yet) and copying each
// later live row into it, zeroing the row it moved out of. This leaves
// every hole pushed to the end of the table without ever moving a row more
// than once.
func compactHoles(table *storage.Table) {
	holeRow := -1
	cursor := storage.TableStart(table)
	empty := make([]byte, table.RowSize)

	for !cursor.EndOfTable {
		rowBytes := cursor.Value()
		if bytes.Equal(rowBytes, empty) {
			if holeRow == -1 {
				holeRow = cursor.RowNum
			}
			cursor.Advance()
			continue
		}

		if holeRow != -1 {
			hole := storage.At(table, holeRow)
			copy(hole.Value(), rowBytes)
			clear(rowBytes)
			holeRow++
		}
		cursor.Advance()
	}
}
