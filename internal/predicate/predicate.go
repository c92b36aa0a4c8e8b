// Package predicate evaluates a parsed WHERE clause against a deserialized
// row.
package predicate

import (
	"bytes"

	"tabledb/internal/parser"
	"tabledb/internal/storage"
)

// Match reports whether row (a full row_size buffer as returned by
// storage.DeserializeRow) satisfies where.
func Match(row []byte, where *parser.WhereClause) bool {
	col := where.Column
	field := row[col.Offset : col.Offset+col.Size]

	switch col.Type {
	case storage.Varchar:
		cmp := bytes.Compare(field, where.Literal)
		switch where.Op {
		case parser.OpEQ:
			return cmp == 0
		case parser.OpNEQ:
			return cmp != 0
		default:
			// Parser rejects ordering operators against VARCHAR columns;
			// this default only guards against future misuse.
			return false
		}
	case storage.Integer:
		a := storage.GetInt32(field)
		b := storage.GetInt32(where.Literal)
		return compareOrdered(where.Op, int64(a), int64(b))
	case storage.Real:
		a := storage.GetReal(field)
		b := storage.GetReal(where.Literal)
		return compareOrderedFloat(where.Op, a, b)
	default:
		return false
	}
}

func compareOrdered(op parser.Operator, a, b int64) bool {
	switch op {
	case parser.OpEQ:
		return a == b
	case parser.OpNEQ:
		return a != b
	case parser.OpGT:
		return a > b
	case parser.OpLT:
		return a < b
	case parser.OpGE:
		return a >= b
	case parser.OpLE:
		return a <= b
	default:
		return false
	}
}

func compareOrderedFloat(op parser.Operator, a, b float64) bool {
	switch op {
	case parser.OpEQ:
		return a == b
	case parser.OpNEQ:
		return a != b
	case parser.OpGT:
		return a > b
	case parser.OpLT:
		return a < b
	case parser.OpGE:
		return a >= b
	case parser.OpLE:
		return a <= b
	default:
		return false
	}
}
