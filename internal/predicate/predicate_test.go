package predicate

import (
	"testing"

	"tabledb/internal/parser"
	"tabledb/internal/storage"
)

func TestMatchInteger(t *testing.T) {
	col := storage.ColumnDefinition{Name: "id", Type: storage.Integer, Size: 4, Offset: 0}
	row := make([]byte, 4)
	storage.PutInt32(row, 5)

	lit := make([]byte, 4)
	storage.PutInt32(lit, 5)

	cases := []struct {
		op   parser.Operator
		want bool
	}{
		{parser.OpEQ, true},
		{parser.OpNEQ, false},
		{parser.OpGE, true},
		{parser.OpLE, true},
		{parser.OpGT, false},
		{parser.OpLT, false},
	}
	for _, tc := range cases {
		where := &parser.WhereClause{Column: col, Op: tc.op, Literal: lit}
		if got := Match(row, where); got != tc.want {
			t.Errorf("op %v: Match = %v, want %v", tc.op, got, tc.want)
		}
	}
}

func TestMatchVarcharEqualityOnly(t *testing.T) {
	col := storage.ColumnDefinition{Name: "name", Type: storage.Varchar, Size: 8, Offset: 0}
	row := make([]byte, 8)
	copy(row, "alice")
	lit := make([]byte, 8)
	copy(lit, "alice")

	eq := &parser.WhereClause{Column: col, Op: parser.OpEQ, Literal: lit}
	if !Match(row, eq) {
		t.Error("expected equal VARCHAR values to match on OpEQ")
	}
	neq := &parser.WhereClause{Column: col, Op: parser.OpNEQ, Literal: lit}
	if Match(row, neq) {
		t.Error("expected equal VARCHAR values not to match on OpNEQ")
	}
}
