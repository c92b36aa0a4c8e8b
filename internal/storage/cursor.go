package storage

// Cursor positions a scan within a table by row number and resolves to a
// byte range inside the owning pager's page buffer.
type Cursor struct {
	Table      *Table
	RowNum     int
	EndOfTable bool
}

// TableStart returns a cursor positioned at row 0.
func TableStart(t *Table) *Cursor {
	return &Cursor{Table: t, RowNum: 0, EndOfTable: t.NumRows == 0}
}

// TableEnd returns a cursor positioned one past the last row, i.e. the
// slot the next INSERT should occupy.
func TableEnd(t *Table) *Cursor {
	return &Cursor{Table: t, RowNum: t.NumRows, EndOfTable: true}
}

// At returns a cursor positioned at an arbitrary row number, used by
// DELETE's compaction pass to track the next hole to fill independently of
// the scan cursor.
func At(t *Table, rowNum int) *Cursor {
	return &Cursor{Table: t, RowNum: rowNum, EndOfTable: rowNum >= t.NumRows}
}

// Value returns the RowSize-wide byte slice inside the current page buffer
// that backs the cursor's row. The slice aliases the pager's in-memory
// page; writes through it are visible immediately and are not persisted
// until the table is closed.
func (c *Cursor) Value() []byte {
	t := c.Table
	pageNum := uint32(c.RowNum / t.RowsPerPage)
	page := t.Pager.GetPage(pageNum)
	rowOffset := (c.RowNum % t.RowsPerPage) * t.RowSize
	return page[rowOffset : rowOffset+t.RowSize]
}

// Advance moves the cursor to the next row, setting EndOfTable once it
// reaches the table's current row count.
func (c *Cursor) Advance() {
	c.RowNum++
	if c.RowNum >= c.Table.NumRows {
		c.EndOfTable = true
	}
}
