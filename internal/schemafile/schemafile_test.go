package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"tabledb/internal/storage"
)

func writeSchema(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.txt")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing schema fixture: %v", err)
	}
	return path
}

func TestLoadParsesTablesAndColumns(t *testing.T) {
	path := writeSchema(t, "2\nusers;2;id:4:int,name:32:varchar\nscores;1;value:4:real\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tables, want 2", len(got))
	}
	if got[0].Name != "users" || len(got[0].Columns) != 2 {
		t.Fatalf("unexpected first table: %+v", got[0])
	}
	if got[0].Columns[1].Type != storage.Varchar || got[0].Columns[1].Size != 32 {
		t.Errorf("unexpected name column: %+v", got[0].Columns[1])
	}
	if got[1].Columns[0].Type != storage.Real {
		t.Errorf("unexpected scores column type: %+v", got[1].Columns[0])
	}
}

func TestLoadRejectsMismatchedColumnCount(t *testing.T) {
	path := writeSchema(t, "1\nusers;3;id:4:int,name:32:varchar\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a declared column count that doesn't match the column list")
	}
}

func TestLoadRejectsUnknownColumnType(t *testing.T) {
	path := writeSchema(t, "1\nusers;1;id:4:uuid\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unknown column type")
	}
}
