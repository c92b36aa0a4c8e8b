package repl

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tabledb/internal/cache"
	"tabledb/internal/catalog"
	"tabledb/internal/executor"
)

func newTestREPL(t *testing.T, in string) (*REPL, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.txt")
	if err := os.WriteFile(schemaPath, []byte("1\nusers;2;id:4:int,name:16:varchar\n"), 0o600); err != nil {
		t.Fatalf("writing schema fixture: %v", err)
	}

	cat, err := catalog.Open(schemaPath, dir)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	c, err := cache.New(64)
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	t.Cleanup(c.Close)

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	r := New(cat, executor.New(c), strings.NewReader(in), &out, logger, false)
	return r, &out
}

func TestRunExecutesStatementsAndExitsCleanly(t *testing.T) {
	input := "insert into users values (1, alice)\nselect * from users\n.exit\n"
	r, out := newTestREPL(t, input)

	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Executed.") {
		t.Errorf("expected an \"Executed.\" outcome in output, got %q", got)
	}
	if !strings.Contains(got, "(1, alice)") {
		t.Errorf("expected the select output row in output, got %q", got)
	}
}

func TestRunReportsUnrecognizedMetaCommand(t *testing.T) {
	r, out := newTestREPL(t, ".bogus\n.exit\n")
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Unrecognized command '.bogus'") {
		t.Errorf("expected an unrecognized-command message, got %q", out.String())
	}
}

func TestRunReportsUnrecognizedKeyword(t *testing.T) {
	r, out := newTestREPL(t, "not a statement\n.exit\n")
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Unrecognized keyword") {
		t.Errorf("expected an unrecognized-keyword outcome, got %q", out.String())
	}
}
