package storage

import (
	"fmt"
	"path/filepath"
)

// Table holds one schema-declared table's column layout together with the
// pager backing its file. Offsets, row_size, rows_per_page, and max_rows
// are computed once at open time and never change.
type Table struct {
	Name        string
	Columns     []ColumnDefinition
	RowSize     int
	RowsPerPage int
	MaxRows     int
	Path        string
	Pager       *Pager
	NumRows     int
}

// OpenTable computes column offsets and row layout for name/columns,
// opens (creating if absent) its backing file under dataDir, and infers
// NumRows from the file's current length.
func OpenTable(dataDir, name string, columns []ColumnDefinition) (*Table, error) {
	rowSize := 0
	laidOut := make([]ColumnDefinition, len(columns))
	for i, col := range columns {
		if err := validateColumnSize(col); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		col.Offset = rowSize
		laidOut[i] = col
		rowSize += col.Size
	}
	if rowSize > PageSize {
		return nil, fmt.Errorf("table %s: row size %d exceeds page size %d", name, rowSize, PageSize)
	}
	if rowSize == 0 {
		return nil, fmt.Errorf("table %s: has no columns", name)
	}

	rowsPerPage := PageSize / rowSize
	maxRows := rowsPerPage * TableMaxPages

	path := filepath.Join(dataDir, name+".table")
	pager, err := OpenPager(path)
	if err != nil {
		return nil, err
	}

	numFullPages := pager.fileLength / PageSize
	bytesRemaining := pager.fileLength % PageSize
	numRows := int(numFullPages)*rowsPerPage + int(bytesRemaining)/rowSize

	return &Table{
		Name:        name,
		Columns:     laidOut,
		RowSize:     rowSize,
		RowsPerPage: rowsPerPage,
		MaxRows:     maxRows,
		Path:        path,
		Pager:       pager,
		NumRows:     numRows,
	}, nil
}

func validateColumnSize(col ColumnDefinition) error {
	switch col.Type {
	case Integer:
		if col.Size != 4 {
			return fmt.Errorf("column %s: int columns must declare size 4, got %d", col.Name, col.Size)
		}
	case Real:
		if col.Size != 4 && col.Size != 8 {
			return fmt.Errorf("column %s: real columns must declare size 4 or 8, got %d", col.Name, col.Size)
		}
	case Varchar:
		if col.Size <= 0 {
			return fmt.Errorf("column %s: varchar columns must declare a positive size", col.Name)
		}
	default:
		return fmt.Errorf("column %s: unknown column type", col.Name)
	}
	return nil
}

// Column returns the definition of the named column, case-sensitive, or
// false if the table has no such column.
func (t *Table) Column(name string) (ColumnDefinition, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnDefinition{}, false
}

// Close flushes every touched page implied by the table's current row
// count and closes the backing file.
func (t *Table) Close() error {
	return t.Pager.CloseFlushing(t.NumRows, t.RowsPerPage, t.RowSize)
}
