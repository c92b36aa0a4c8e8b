// Package dberr defines the sentinel errors returned by the parser and
// executor, and the fixed outcome strings the REPL prints for each.
package dberr

import "errors"

var (
	// ErrNegativeID is returned when an INTEGER column named "id" is given
	// a value <= 0 on INSERT.
	ErrNegativeID = errors.New("id must be positive")
	// ErrStringTooLong is returned when a VARCHAR literal exceeds the
	// column's declared byte width.
	ErrStringTooLong = errors.New("string is too long")
	// ErrSyntax covers any malformed statement the parser cannot make
	// sense of.
	ErrSyntax = errors.New("syntax error")
	// ErrUnrecognizedStatement is returned when the first keyword of a
	// line does not match one of the four verbs.
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
	// ErrTableNotFound is returned when a statement names a table the
	// schema does not know about.
	ErrTableNotFound = errors.New("table not found")
	// ErrInternal covers allocation-shaped failures that have no clean
	// mapping to a user-facing cause.
	ErrInternal = errors.New("internal error")
	// ErrTableFull is returned by the executor when an INSERT would
	// exceed a table's max_rows.
	ErrTableFull = errors.New("table full")
)

// Outcome renders err as one of the fixed REPL outcome strings. Unrecognized
// errors fall back to a generic "Error: " prefix, which should never happen
// for errors produced by this module's own packages.
func Outcome(err error, rawLine string) string {
	switch {
	case err == nil:
		return "Executed."
	case errors.Is(err, ErrTableFull):
		return "Error: Table full."
	case errors.Is(err, ErrNegativeID):
		return "ID must be positive."
	case errors.Is(err, ErrStringTooLong):
		return "String is too long."
	case errors.Is(err, ErrUnrecognizedStatement):
		return "Unrecognized keyword at start of '" + rawLine + "'."
	case errors.Is(err, ErrSyntax):
		return "Syntax error."
	case errors.Is(err, ErrTableNotFound):
		return "Table not found."
	case errors.Is(err, ErrInternal):
		return "Internal error."
	default:
		return "Error: " + err.Error()
	}
}
