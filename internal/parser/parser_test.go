package parser

import (
	"testing"

	"tabledb/internal/storage"
)

type fakeCatalog map[string]*storage.Table

func (f fakeCatalog) Table(name string) (*storage.Table, bool) {
	t, ok := f[name]
	return t, ok
}

func testTable(t *testing.T) *storage.Table {
	t.Helper()
	table, err := storage.OpenTable(t.TempDir(), "users", []storage.ColumnDefinition{
		{Name: "id", Type: storage.Integer, Size: 4},
		{Name: "name", Type: storage.Varchar, Size: 16},
	})
	if err != nil {
		t.Fatalf("OpenTable: %v", err)
	}
	t.Cleanup(func() { table.Close() })
	return table
}

func TestParseValidStatements(t *testing.T) {
	table := testTable(t)
	cat := fakeCatalog{"users": table}

	tests := []string{
		"insert into users values (1, alice)",
		"select * from users",
		"select id, name from users where id = 1",
		"update users set name = 'bob' where id = 1",
		"delete from users where id = 1",
	}
	for _, sql := range tests {
		if _, err := Parse(sql, cat); err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", sql, err)
		}
	}
}

func TestParseInvalidStatementsReturnError(t *testing.T) {
	table := testTable(t)
	cat := fakeCatalog{"users": table}

	tests := []string{
		"",
		"select * students",
		"insert into users (1, alice)",
		"select * from missing",
		"select * from users where id",
		"select * from users where name > 'bob'",
		"update users set name = 'bob'",
	}
	for _, sql := range tests {
		if _, err := Parse(sql, cat); err == nil {
			t.Errorf("Parse(%q) expected an error, got none", sql)
		}
	}
}

func TestParseInsertValidatesPositiveID(t *testing.T) {
	table := testTable(t)
	cat := fakeCatalog{"users": table}

	if _, err := Parse("insert into users values (-1, alice)", cat); err == nil {
		t.Fatal("expected an error for a non-positive id")
	}
}

func TestParseInsertRejectsWrongValueCount(t *testing.T) {
	table := testTable(t)
	cat := fakeCatalog{"users": table}

	if _, err := Parse("insert into users values (1)", cat); err == nil {
		t.Fatal("expected an error for a value list shorter than the column list")
	}
}
