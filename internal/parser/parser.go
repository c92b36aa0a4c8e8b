package parser

import (
	"fmt"
	"strconv"
	"strings"

	"tabledb/internal/dberr"
	"tabledb/internal/lexer"
	"tabledb/internal/storage"
)

// TableResolver looks up a table by name. *catalog.Catalog satisfies this;
// the parser only needs lookup, not the catalog's lifecycle methods.
type TableResolver interface {
	Table(name string) (*storage.Table, bool)
}

// Parse classifies line by its leading keyword and dispatches to the
// matching statement parser. Statements are validated against tables
// resolved from cat: an unknown table, unknown column, or malformed clause
// is reported here rather than deferred to execution.
func Parse(line string, cat TableResolver) (*Statement, error) {
	trimmed := strings.TrimSpace(line)

	verb, _, _ := strings.Cut(trimmed, " ")
	switch strings.ToLower(verb) {
	case "insert":
		return parseInsert(trimmed, cat)
	case "select":
		return parseSelect(newTokenCursor(trimmed), cat)
	case "update":
		return parseUpdate(newTokenCursor(trimmed), cat)
	case "delete":
		return parseDelete(newTokenCursor(trimmed), cat)
	default:
		return nil, fmt.Errorf("%w: %q", dberr.ErrUnrecognizedStatement, trimmed)
	}
}

// tokenCursor is a two-token lookahead cursor over a lexer.Lexer.
type tokenCursor struct {
	lx   *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func newTokenCursor(line string) *tokenCursor {
	tc := &tokenCursor{lx: lexer.New(line)}
	tc.advance()
	tc.advance()
	return tc
}

func (tc *tokenCursor) advance() {
	tc.cur = tc.peek
	tc.peek = tc.lx.NextToken()
}

// expectWord consumes cur if it is a WORD matching kw case-insensitively,
// returning a syntax error otherwise.
func (tc *tokenCursor) expectWord(kw string) error {
	if tc.cur.Kind != lexer.WORD || !strings.EqualFold(tc.cur.Value, kw) {
		return fmt.Errorf("%w: expected %q", dberr.ErrSyntax, kw)
	}
	tc.advance()
	return nil
}

// takeWord consumes and returns cur if it is a WORD.
func (tc *tokenCursor) takeWord() (string, error) {
	if tc.cur.Kind != lexer.WORD {
		return "", fmt.Errorf("%w: expected an identifier", dberr.ErrSyntax)
	}
	v := tc.cur.Value
	tc.advance()
	return v, nil
}

var operatorKinds = map[lexer.Kind]Operator{
	lexer.EQ:  OpEQ,
	lexer.NEQ: OpNEQ,
	lexer.GT:  OpGT,
	lexer.LT:  OpLT,
	lexer.GE:  OpGE,
	lexer.LE:  OpLE,
}

// parseWhereClause parses `column OP literal` with table already resolved.
// Ordering operators against a VARCHAR column are rejected here at parse
// time — VARCHAR only supports equality comparison.
func parseWhereClause(tc *tokenCursor, table *storage.Table) (*WhereClause, error) {
	colName, err := tc.takeWord()
	if err != nil {
		return nil, err
	}
	col, ok := table.Column(colName)
	if !ok {
		return nil, fmt.Errorf("%w: table %s has no column %q", dberr.ErrSyntax, table.Name, colName)
	}

	op, ok := operatorKinds[tc.cur.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: expected a comparison operator", dberr.ErrSyntax)
	}
	if col.Type == storage.Varchar && op != OpEQ && op != OpNEQ {
		return nil, fmt.Errorf("%w: varchar column %q only supports = and !=", dberr.ErrSyntax, col.Name)
	}
	tc.advance()

	if tc.cur.Kind != lexer.WORD && tc.cur.Kind != lexer.STRING {
		return nil, fmt.Errorf("%w: expected a literal", dberr.ErrSyntax)
	}
	litText := tc.cur.Value
	tc.advance()

	lit, err := storage.ParseColumnLiteral(col, litText)
	if err != nil {
		return nil, err
	}
	return &WhereClause{Column: col, Op: op, Literal: lit}, nil
}

func parseSelect(tc *tokenCursor, cat TableResolver) (*Statement, error) {
	if err := tc.expectWord("select"); err != nil {
		return nil, err
	}

	var colNames []string
	selectAll := false
	if tc.cur.Kind == lexer.ASTERISK {
		selectAll = true
		tc.advance()
	} else {
		for {
			name, err := tc.takeWord()
			if err != nil {
				return nil, err
			}
			colNames = append(colNames, name)
			if tc.cur.Kind != lexer.COMMA {
				break
			}
			tc.advance()
		}
	}

	if err := tc.expectWord("from"); err != nil {
		return nil, err
	}
	tableName, err := tc.takeWord()
	if err != nil {
		return nil, err
	}
	table, ok := cat.Table(tableName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", dberr.ErrTableNotFound, tableName)
	}

	stmt := &SelectStatement{Table: table, SelectAll: selectAll}
	if !selectAll {
		stmt.Columns = make([]storage.ColumnDefinition, 0, len(colNames))
		for _, name := range colNames {
			col, ok := table.Column(name)
			if !ok {
				return nil, fmt.Errorf("%w: table %s has no column %q", dberr.ErrSyntax, table.Name, name)
			}
			stmt.Columns = append(stmt.Columns, col)
		}
	}

	if tc.cur.Kind == lexer.WORD && strings.EqualFold(tc.cur.Value, "where") {
		tc.advance()
		where, err := parseWhereClause(tc, table)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	} else if tc.cur.Kind != lexer.END {
		return nil, fmt.Errorf("%w: unexpected trailing input", dberr.ErrSyntax)
	}

	return &Statement{Select: stmt}, nil
}

func parseUpdate(tc *tokenCursor, cat TableResolver) (*Statement, error) {
	if err := tc.expectWord("update"); err != nil {
		return nil, err
	}
	tableName, err := tc.takeWord()
	if err != nil {
		return nil, err
	}
	table, ok := cat.Table(tableName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", dberr.ErrTableNotFound, tableName)
	}

	if err := tc.expectWord("set"); err != nil {
		return nil, err
	}
	colName, err := tc.takeWord()
	if err != nil {
		return nil, err
	}
	col, ok := table.Column(colName)
	if !ok {
		return nil, fmt.Errorf("%w: table %s has no column %q", dberr.ErrSyntax, table.Name, colName)
	}
	if tc.cur.Kind != lexer.EQ {
		return nil, fmt.Errorf("%w: expected '=' after column name", dberr.ErrSyntax)
	}
	tc.advance()
	if tc.cur.Kind != lexer.WORD && tc.cur.Kind != lexer.STRING {
		return nil, fmt.Errorf("%w: expected a literal", dberr.ErrSyntax)
	}
	valueText := tc.cur.Value
	tc.advance()
	value, err := storage.ParseColumnLiteral(col, valueText)
	if err != nil {
		return nil, err
	}

	if err := tc.expectWord("where"); err != nil {
		return nil, err
	}
	where, err := parseWhereClause(tc, table)
	if err != nil {
		return nil, err
	}
	if tc.cur.Kind != lexer.END {
		return nil, fmt.Errorf("%w: unexpected trailing input", dberr.ErrSyntax)
	}

	return &Statement{Update: &UpdateStatement{Table: table, Column: col, Value: value, Where: *where}}, nil
}

func parseDelete(tc *tokenCursor, cat TableResolver) (*Statement, error) {
	if err := tc.expectWord("delete"); err != nil {
		return nil, err
	}
	if err := tc.expectWord("from"); err != nil {
		return nil, err
	}
	tableName, err := tc.takeWord()
	if err != nil {
		return nil, err
	}
	table, ok := cat.Table(tableName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", dberr.ErrTableNotFound, tableName)
	}

	if err := tc.expectWord("where"); err != nil {
		return nil, err
	}
	where, err := parseWhereClause(tc, table)
	if err != nil {
		return nil, err
	}
	if tc.cur.Kind != lexer.END {
		return nil, fmt.Errorf("%w: unexpected trailing input", dberr.ErrSyntax)
	}

	return &Statement{Delete: &DeleteStatement{Table: table, Where: *where}}, nil
}

// parseInsert extracts the table name and value list by raw substring
// search rather than through the token lexer: it locates "values" and the
// parenthesized list by position instead of tokenizing them, which is why
// a comma inside a quoted VARCHAR literal still splits the value list.
func parseInsert(line string, cat TableResolver) (*Statement, error) {
	lower := strings.ToLower(line)
	if !strings.HasPrefix(lower, "insert into ") {
		return nil, fmt.Errorf("%w: expected \"insert into <table> values (...)\"", dberr.ErrSyntax)
	}

	valuesIdx := strings.Index(lower, " values ")
	if valuesIdx == -1 {
		return nil, fmt.Errorf("%w: missing VALUES clause", dberr.ErrSyntax)
	}
	tableName := strings.TrimSpace(line[len("insert into "):valuesIdx])
	if tableName == "" {
		return nil, fmt.Errorf("%w: missing table name", dberr.ErrSyntax)
	}
	table, ok := cat.Table(tableName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", dberr.ErrTableNotFound, tableName)
	}

	openIdx := strings.Index(line[valuesIdx:], "(")
	closeIdx := strings.LastIndex(line, ")")
	if openIdx == -1 || closeIdx == -1 || closeIdx <= valuesIdx+openIdx {
		return nil, fmt.Errorf("%w: expected a parenthesized value list", dberr.ErrSyntax)
	}
	openIdx += valuesIdx

	rawValues := strings.Split(line[openIdx+1:closeIdx], ",")
	if len(rawValues) != len(table.Columns) {
		return nil, fmt.Errorf("%w: table %s has %d columns, got %d values", dberr.ErrSyntax, table.Name, len(table.Columns), len(rawValues))
	}

	row := make([]byte, table.RowSize)
	for i, col := range table.Columns {
		literal := strings.TrimSpace(rawValues[i])
		if col.Type == storage.Integer && col.Name == "id" {
			n, err := strconv.ParseInt(literal, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", dberr.ErrSyntax, literal)
			}
			if n <= 0 {
				return nil, dberr.ErrNegativeID
			}
		}
		if err := storage.WriteInsertColumn(row, col, literal); err != nil {
			return nil, err
		}
	}

	return &Statement{Insert: &InsertStatement{Table: table, Row: row}}, nil
}
