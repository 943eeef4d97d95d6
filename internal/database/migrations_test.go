package database

import (
	"reflect"
	"testing"
)

func TestSplitSQLStatements(t *testing.T) {
	input := `
		-- leading comment
		CREATE TABLE a (id INTEGER);

		CREATE TABLE b (
			id INTEGER
		);
		SELECT 1`

	got := splitSQLStatements(input)
	want := []string{
		"CREATE TABLE a (id INTEGER);",
		"CREATE TABLE b (\n\t\t\tid INTEGER\n\t\t);",
		"SELECT 1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitSQLStatements = %#v, want %#v", got, want)
	}
}

func TestSchemaHasBothTables(t *testing.T) {
	statements := splitSQLStatements(schema)
	if len(statements) != 2 {
		t.Fatalf("expected 2 schema statements, got %d", len(statements))
	}
}
