// Package schemafile reads the schema descriptor file consulted at
// startup: a thin I/O wrapper that turns lines of text into table
// descriptors, with no awareness of pages, pagers, or execution.
package schemafile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tabledb/internal/storage"
)

// TableDescriptor names a table and its declared columns, in the order
// they appear in the schema file. Offsets are not computed here — that is
// storage.OpenTable's job.
type TableDescriptor struct {
	Name    string
	Columns []storage.ColumnDefinition
}

// Load reads the schema file at path and returns one descriptor per
// declared table, in file order.
func Load(path string) ([]TableDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("schema file %s: missing table count line", path)
	}
	numTables, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("schema file %s: invalid table count: %w", path, err)
	}

	tables := make([]TableDescriptor, 0, numTables)
	for i := 0; i < numTables; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("schema file %s: expected %d tables, found %d", path, numTables, i)
		}
		desc, err := parseTableLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("schema file %s, line %d: %w", path, i+2, err)
		}
		tables = append(tables, desc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading schema file %s: %w", path, err)
	}
	return tables, nil
}

func parseTableLine(line string) (TableDescriptor, error) {
	fields := strings.Split(line, ";")
	if len(fields) != 3 {
		return TableDescriptor{}, fmt.Errorf("expected 3 ';'-separated fields, got %d", len(fields))
	}
	name := fields[0]
	numColumns, err := strconv.Atoi(fields[1])
	if err != nil {
		return TableDescriptor{}, fmt.Errorf("invalid column count: %w", err)
	}

	colDefs := strings.Split(fields[2], ",")
	if len(colDefs) != numColumns {
		return TableDescriptor{}, fmt.Errorf("declared %d columns, found %d", numColumns, len(colDefs))
	}

	columns := make([]storage.ColumnDefinition, numColumns)
	for i, def := range colDefs {
		col, err := parseColumnDef(def)
		if err != nil {
			return TableDescriptor{}, fmt.Errorf("column %d: %w", i, err)
		}
		columns[i] = col
	}

	return TableDescriptor{Name: name, Columns: columns}, nil
}

func parseColumnDef(def string) (storage.ColumnDefinition, error) {
	parts := strings.Split(def, ":")
	if len(parts) != 3 {
		return storage.ColumnDefinition{}, fmt.Errorf("expected name:size:type, got %q", def)
	}
	size, err := strconv.Atoi(parts[1])
	if err != nil {
		return storage.ColumnDefinition{}, fmt.Errorf("invalid size in %q: %w", def, err)
	}
	colType, err := parseColumnType(parts[2])
	if err != nil {
		return storage.ColumnDefinition{}, err
	}
	return storage.ColumnDefinition{Name: parts[0], Size: size, Type: colType}, nil
}

func parseColumnType(s string) (storage.ColumnType, error) {
	switch s {
	case "int":
		return storage.Integer, nil
	case "varchar":
		return storage.Varchar, nil
	case "real":
		return storage.Real, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}
