package dbclient

import (
	"context"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// sqliteTestProfile runs the shared SQL path against an in-process
// database, no server needed. sqlite_master stands in for
// information_schema.
var sqliteTestProfile = engineProfile{
	tablesQuery: `SELECT name, '', CASE type WHEN 'view' THEN 'VIEW' ELSE 'BASE TABLE' END
		FROM sqlite_master
		WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%'
		ORDER BY name`,
	tablesBindDatabase: false,
	quoteIdent: func(name string) string {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	},
	placeholder: func(n int) string { return "?" },
}

func openTestEngine(t *testing.T) *sqlEngine {
	t.Helper()
	// One connection: each in-memory sqlite connection is its own database.
	e, err := newSQLEngine("sqlite", ":memory:", sqliteTestProfile, PoolOptions{MaxConns: 1})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func mustExec(t *testing.T, e *sqlEngine, stmts ...string) {
	t.Helper()
	for _, s := range stmts {
		if _, err := e.db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
}

func TestSQLEngine_QueryNormalizesRows(t *testing.T) {
	e := openTestEngine(t)
	mustExec(t, e,
		`CREATE TABLE people (id INTEGER, name TEXT, score REAL, note TEXT)`,
		`INSERT INTO people VALUES (1, 'ada', 9.5, NULL), (2, 'bob', 7.0, 'x')`,
	)

	res, err := e.Query(context.Background(), `SELECT id, name, score, note FROM people ORDER BY id`)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.RowCount != 2 || len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", res.RowCount)
	}
	if len(res.Columns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(res.Columns))
	}
	if res.Columns[0].Name != "id" || res.Columns[1].Name != "name" {
		t.Errorf("unexpected column names: %+v", res.Columns)
	}

	first := res.Rows[0]
	if first["id"] != int64(1) {
		t.Errorf("id: got %v (%T), want int64 1", first["id"], first["id"])
	}
	if first["name"] != "ada" {
		t.Errorf("name: got %v, want ada", first["name"])
	}
	if first["score"] != 9.5 {
		t.Errorf("score: got %v (%T), want 9.5", first["score"], first["score"])
	}
	if first["note"] != nil {
		t.Errorf("note: got %v, want nil", first["note"])
	}
}

func TestSQLEngine_ZeroRowsGiveEmptyResult(t *testing.T) {
	e := openTestEngine(t)
	mustExec(t, e, `CREATE TABLE empty_t (id INTEGER)`)

	res, err := e.Query(context.Background(), `SELECT id FROM empty_t`)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.RowCount != 0 {
		t.Errorf("expected rowCount 0, got %d", res.RowCount)
	}
	if len(res.Columns) != 0 || res.Columns == nil {
		t.Errorf("expected empty (not nil) columns, got %#v", res.Columns)
	}
	if len(res.Rows) != 0 || res.Rows == nil {
		t.Errorf("expected empty (not nil) rows, got %#v", res.Rows)
	}
}

func TestSQLEngine_QueryErrorPassesThrough(t *testing.T) {
	e := openTestEngine(t)
	if _, err := e.Query(context.Background(), `SELECT * FROM no_such_table`); err == nil {
		t.Fatal("expected driver error for missing table")
	}
}

func TestSQLEngine_ListTables(t *testing.T) {
	e := openTestEngine(t)
	mustExec(t, e,
		`CREATE TABLE books (id INTEGER)`,
		`CREATE TABLE authors (id INTEGER)`,
		`CREATE VIEW recent_books AS SELECT * FROM books`,
	)

	tables, err := e.ListTables(context.Background(), "")
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	if len(tables) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(tables), tables)
	}
	// Ordered by name.
	if tables[0].Name != "authors" || tables[1].Name != "books" || tables[2].Name != "recent_books" {
		t.Errorf("unexpected order: %+v", tables)
	}
	if tables[0].Type != "table" || tables[2].Type != "view" {
		t.Errorf("unexpected kind mapping: %+v", tables)
	}
	for _, tb := range tables {
		if tb.RowCount != nil {
			t.Errorf("rowCount must stay unset, got %v for %s", *tb.RowCount, tb.Name)
		}
	}
}

func TestSQLEngine_TableData(t *testing.T) {
	e := openTestEngine(t)
	mustExec(t, e, `CREATE TABLE nums (n INTEGER)`,
		`INSERT INTO nums VALUES (1), (2), (3), (4), (5)`)

	page, err := e.TableData(context.Background(), "", "nums", 2, 0)
	if err != nil {
		t.Fatalf("TableData: %v", err)
	}
	if len(page.Rows) != 2 || page.TotalCount != 5 || !page.HasMore {
		t.Errorf("unexpected first page: %+v", page)
	}

	last, err := e.TableData(context.Background(), "", "nums", 2, 4)
	if err != nil {
		t.Fatalf("TableData: %v", err)
	}
	if len(last.Rows) != 1 || last.HasMore {
		t.Errorf("unexpected last page: %+v", last)
	}
}

func TestSQLEngine_TableDataQuotesIdentifiers(t *testing.T) {
	e := openTestEngine(t)
	mustExec(t, e, `CREATE TABLE "odd name" (n INTEGER)`, `INSERT INTO "odd name" VALUES (1)`)

	page, err := e.TableData(context.Background(), "", "odd name", 10, 0)
	if err != nil {
		t.Fatalf("TableData: %v", err)
	}
	if page.TotalCount != 1 {
		t.Errorf("expected 1 row, got %d", page.TotalCount)
	}
}

func TestSQLEngine_Ping(t *testing.T) {
	e := openTestEngine(t)
	if err := e.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
