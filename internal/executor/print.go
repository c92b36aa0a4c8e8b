package executor

import (
	"fmt"
	"io"

	"tabledb/internal/storage"
)

// printRow renders row's projected columns parenthesized and comma-space
// separated: integers as %d, strings NUL-trimmed, reals as %f.
func printRow(w io.Writer, row []byte, columns []storage.ColumnDefinition) {
	fmt.Fprint(w, "(")
	for i, col := range columns {
		field := row[col.Offset : col.Offset+col.Size]
		switch col.Type {
		case storage.Integer:
			fmt.Fprintf(w, "%d", storage.GetInt32(field))
		case storage.Varchar:
			fmt.Fprint(w, storage.GetVarchar(field))
		case storage.Real:
			fmt.Fprintf(w, "%f", storage.GetReal(field))
		}
		if i < len(columns)-1 {
			fmt.Fprint(w, ", ")
		}
	}
	fmt.Fprintln(w, ")")
}
