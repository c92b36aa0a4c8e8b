package storage

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"tabledb/internal/dberr"
)

// SerializeRow copies row_size bytes from row into the destination page
// slice.
func SerializeRow(row, dest []byte) {
	copy(dest, row)
}

// DeserializeRow copies each column's bytes out of src (a page slice) into
// a freshly allocated row_size buffer. The returned buffer is owned by the
// caller for the current scan step.
func DeserializeRow(src []byte, t *Table) []byte {
	dst := make([]byte, t.RowSize)
	for _, col := range t.Columns {
		copy(dst[col.Offset:col.Offset+col.Size], src[col.Offset:col.Offset+col.Size])
	}
	return dst
}

// PutInt32 writes v little-endian into a column's on-disk width.
func PutInt32(dst []byte, v int32) {
	binary.LittleEndian.PutUint32(dst, uint32(v))
}

// GetInt32 reads a little-endian 32-bit integer from src.
func GetInt32(src []byte) int32 {
	return int32(binary.LittleEndian.Uint32(src))
}

// PutReal writes v into dst using float32 or float64 encoding chosen by
// len(dst): a column's declared Size drives its on-disk width.
func PutReal(dst []byte, v float64) error {
	switch len(dst) {
	case 4:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	case 8:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
	default:
		return fmt.Errorf("unsupported real column width %d", len(dst))
	}
	return nil
}

// GetReal reads a float32 or float64 out of src depending on its length.
func GetReal(src []byte) float64 {
	switch len(src) {
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	case 8:
		return math.Float64frombits(binary.LittleEndian.Uint64(src))
	}
	return 0
}

// GetVarchar returns src as a Go string, trimming trailing NUL padding.
func GetVarchar(src []byte) string {
	return strings.TrimRight(string(src), "\x00")
}

// WriteInsertColumn writes literal into row at column's offset following
// INSERT's rules: VARCHAR literals are raw, unquoted text, and an
// over-length string is rejected. Integer parsing of an "id"
// column's positivity is the caller's responsibility, since only the
// parser knows a value came from an INSERT statement.
func WriteInsertColumn(row []byte, col ColumnDefinition, literal string) error {
	dst := row[col.Offset : col.Offset+col.Size]
	switch col.Type {
	case Integer:
		n, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", dberr.ErrSyntax, literal)
		}
		PutInt32(dst, int32(n))
	case Real:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a real", dberr.ErrSyntax, literal)
		}
		if err := PutReal(dst, f); err != nil {
			return err
		}
	case Varchar:
		if len(literal) > col.Size {
			return dberr.ErrStringTooLong
		}
		copy(dst, literal)
	default:
		return fmt.Errorf("%w: unknown column type for %s", dberr.ErrInternal, col.Name)
	}
	return nil
}

// ParseColumnLiteral parses literal into a column.Size-wide standalone
// byte buffer, for use by WHERE clauses and UPDATE's SET value — contexts
// where VARCHAR literals must be single-quote delimited.
func ParseColumnLiteral(col ColumnDefinition, literal string) ([]byte, error) {
	buf := make([]byte, col.Size)
	switch col.Type {
	case Integer:
		n, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", dberr.ErrSyntax, literal)
		}
		PutInt32(buf, int32(n))
	case Real:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a real", dberr.ErrSyntax, literal)
		}
		if err := PutReal(buf, f); err != nil {
			return nil, err
		}
	case Varchar:
		if len(literal) < 2 || literal[0] != '\'' || literal[len(literal)-1] != '\'' {
			return nil, fmt.Errorf("%w: varchar literal %q must be single-quoted", dberr.ErrSyntax, literal)
		}
		text := literal[1 : len(literal)-1]
		if len(text) > col.Size {
			return nil, dberr.ErrStringTooLong
		}
		copy(buf, text)
	default:
		return nil, fmt.Errorf("%w: unknown column type for %s", dberr.ErrInternal, col.Name)
	}
	return buf, nil
}
