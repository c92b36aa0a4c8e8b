package executor

import (
	"tabledb/internal/parser"
	"tabledb/internal/predicate"
	"tabledb/internal/storage"
)

// executeUpdate scans upd.Table start to end, overwriting upd.Column on
// every row matching upd.Where.
func (e *Executor) executeUpdate(upd *parser.UpdateStatement) error {
	table := upd.Table
	cursor := storage.TableStart(table)
	for !cursor.EndOfTable {
		rowBytes := cursor.Value()
		row := storage.DeserializeRow(rowBytes, table)
		if !predicate.Match(row, &upd.Where) {
			cursor.Advance()
			continue
		}
		copy(row[upd.Column.Offset:upd.Column.Offset+upd.Column.Size], upd.Value)
		storage.SerializeRow(row, rowBytes)
		cursor.Advance()
	}

	if e.cache != nil {
		e.cache.Invalidate(table.Name)
	}
	return nil
}
