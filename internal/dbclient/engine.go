package dbclient

import (
	"context"
	"errors"
	"fmt"

	"mesagrid/internal/domain"
)

// ErrUnsupportedKind is returned when an engine kind outside the
// supported families is requested. Unreachable through the public
// command surface, kept as a defensive case.
var ErrUnsupportedKind = errors.New("unsupported database type")

// Target holds everything needed to reach one physical database.
// The password is supplied separately from the saved config, so it
// only ever lives here in memory.
type Target struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
}

// PoolOptions bounds a connection pool.
type PoolOptions struct {
	MaxConns int
}

// Engine abstracts one live pooled connection to a database. One
// implementation exists per engine family; the registry selects it by
// the stored engine kind. Adding a family means adding a profile, not
// touching the registry.
type Engine interface {
	// Ping verifies one connection can be acquired.
	Ping(ctx context.Context) error

	// Query executes the SQL text verbatim and returns the normalized
	// result. A zero-row result has empty columns and rows.
	Query(ctx context.Context, sqlText string) (*domain.QueryResult, error)

	// ListTables enumerates tables and views. database is the
	// configured target database, needed by the MySQL family.
	ListTables(ctx context.Context, database string) ([]domain.TableInfo, error)

	// TableData reads one page of rows from a table, with a total count.
	TableData(ctx context.Context, schema, table string, limit, offset int64) (*domain.TableDataResult, error)

	// Close releases the pool. Connections already handed out finish
	// their work before going away.
	Close() error
}

// Open builds a pool for the given engine kind. The pool itself is
// lazy: no network I/O happens until Ping or a query.
func Open(kind domain.EngineKind, target Target, opts PoolOptions) (Engine, error) {
	switch kind {
	case domain.EnginePostgres:
		return newSQLEngine("postgres", buildPostgresDSN(target), postgresProfile, opts)
	case domain.EngineMySQL:
		return newSQLEngine("mysql", buildMySQLDSN(target), mysqlProfile, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
}
