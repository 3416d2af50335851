package dbclient

import (
	"errors"
	"testing"

	"mesagrid/internal/domain"
)

func TestOpen_UnsupportedKind(t *testing.T) {
	_, err := Open(domain.EngineKind("oracle"), Target{}, PoolOptions{})
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
}

func TestBuildPostgresDSN(t *testing.T) {
	dsn := buildPostgresDSN(Target{
		Host: "db.internal", Port: 5433, Database: "app", Username: "u", Password: "p",
	})
	want := "host=db.internal port=5433 user=u password=p dbname=app sslmode=disable"
	if dsn != want {
		t.Errorf("got %q, want %q", dsn, want)
	}
}

func TestBuildPostgresDSN_DefaultPort(t *testing.T) {
	dsn := buildPostgresDSN(Target{Host: "localhost", Database: "app", Username: "u"})
	if want := "host=localhost port=5432 user=u password= dbname=app sslmode=disable"; dsn != want {
		t.Errorf("got %q, want %q", dsn, want)
	}
}

func TestBuildMySQLDSN(t *testing.T) {
	dsn := buildMySQLDSN(Target{
		Host: "db.internal", Port: 3307, Database: "app", Username: "u", Password: "p",
	})
	want := "u:p@tcp(db.internal:3307)/app?parseTime=true&charset=utf8mb4"
	if dsn != want {
		t.Errorf("got %q, want %q", dsn, want)
	}
}

func TestBuildMySQLDSN_DefaultPort(t *testing.T) {
	dsn := buildMySQLDSN(Target{Host: "localhost", Database: "app", Username: "u"})
	if want := "u:@tcp(localhost:3306)/app?parseTime=true&charset=utf8mb4"; dsn != want {
		t.Errorf("got %q, want %q", dsn, want)
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := postgresProfile.quoteIdent(`we"ird`); got != `"we""ird"` {
		t.Errorf("postgres quote: got %s", got)
	}
	if got := mysqlProfile.quoteIdent("we`ird"); got != "`we``ird`" {
		t.Errorf("mysql quote: got %s", got)
	}
	if got := postgresProfile.placeholder(2); got != "$2" {
		t.Errorf("postgres placeholder: got %s", got)
	}
	if got := mysqlProfile.placeholder(2); got != "?" {
		t.Errorf("mysql placeholder: got %s", got)
	}
}
