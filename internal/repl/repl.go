// Package repl drives the read-eval-print loop: read a line, dispatch it
// as a meta-command or a statement, print one fixed outcome line, repeat
// until ".exit".
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"tabledb/internal/catalog"
	"tabledb/internal/dberr"
	"tabledb/internal/executor"
	"tabledb/internal/parser"
)

// REPL owns the input scanner, the output writer, and the catalog and
// executor it drives statements through.
type REPL struct {
	cat    *catalog.Catalog
	exec   *executor.Executor
	in     *bufio.Scanner
	out    io.Writer
	log    *slog.Logger
	prompt bool
}

// New returns a REPL reading lines from in and writing prompts and
// outcomes to out. showPrompt controls whether "db > " is printed before
// each read.
func New(cat *catalog.Catalog, exec *executor.Executor, in io.Reader, out io.Writer, log *slog.Logger, showPrompt bool) *REPL {
	return &REPL{
		cat:    cat,
		exec:   exec,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
		prompt: showPrompt,
	}
}

// Run reads and dispatches lines until ".exit", end of input, or a fatal
// I/O error. On any exit path it closes the catalog, flushing every
// table's pages to disk.
func (r *REPL) Run() error {
	for {
		if r.prompt {
			fmt.Fprint(r.out, "db > ")
		}
		if !r.in.Scan() {
			break
		}
		if exit := r.dispatch(r.in.Text()); exit {
			break
		}
	}
	if err := r.in.Err(); err != nil {
		r.log.Error("reading input", "error", err)
	}
	return r.cat.Close()
}

// dispatch handles one line and reports whether the loop should stop. An
// empty line is not special-cased: it falls through to the parser like
// any other input and prints an "unrecognized statement" outcome.
func (r *REPL) dispatch(line string) (exit bool) {
	if len(line) > 0 && line[0] == '.' {
		return r.runMeta(line)
	}

	stmt, err := parser.Parse(line, r.cat)
	if err != nil {
		fmt.Fprintln(r.out, dberr.Outcome(err, line))
		return false
	}
	err = r.exec.Run(stmt, r.out)
	fmt.Fprintln(r.out, dberr.Outcome(err, line))
	return false
}

func (r *REPL) runMeta(line string) (exit bool) {
	if line == ".exit" {
		r.log.Info("shutdown", "reason", "exit command")
		return true
	}
	fmt.Fprintf(r.out, "Unrecognized command '%s'\n", line)
	return false
}
