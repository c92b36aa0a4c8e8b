// Package parser turns one REPL input line into a validated Statement
// bound to a resolved table, covering INSERT, SELECT, UPDATE, and DELETE.
// It uses a cursor over lexer tokens with advance()/expectWord() helpers and one
// parse function per verb, returning a typed error instead of panicking on
// malformed input.
package parser

import "tabledb/internal/storage"

// Operator is one of the six WHERE comparison operators.
type Operator int

const (
	OpEQ Operator = iota
	OpNEQ
	OpGT
	OpLT
	OpGE
	OpLE
)

// WhereClause is a single `column OP literal` predicate, with the literal
// already parsed into the column's on-disk byte width.
type WhereClause struct {
	Column  storage.ColumnDefinition
	Op      Operator
	Literal []byte
}

// InsertStatement carries a fully built, ready-to-copy row buffer.
type InsertStatement struct {
	Table *storage.Table
	Row   []byte
}

// SelectStatement carries the resolved projection and optional filter.
type SelectStatement struct {
	Table     *storage.Table
	SelectAll bool
	Columns   []storage.ColumnDefinition
	Where     *WhereClause
}

// UpdateStatement carries the single SET assignment and mandatory filter.
type UpdateStatement struct {
	Table  *storage.Table
	Column storage.ColumnDefinition
	Value  []byte
	Where  WhereClause
}

// DeleteStatement carries the mandatory filter.
type DeleteStatement struct {
	Table *storage.Table
	Where WhereClause
}

// Statement is a tagged variant over the four verbs; exactly one field is
// non-nil.
type Statement struct {
	Insert *InsertStatement
	Select *SelectStatement
	Update *UpdateStatement
	Delete *DeleteStatement
}
