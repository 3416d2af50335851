package dbclient

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mesagrid/internal/domain"
)

// engineProfile captures what differs between the engine families:
// how to list tables, and how to quote/bind when the core builds a
// statement itself.
type engineProfile struct {
	tablesQuery        string
	tablesBindDatabase bool
	quoteIdent         func(string) string
	placeholder        func(int) string
}

// sqlEngine is the shared database/sql implementation behind every
// engine family.
type sqlEngine struct {
	db      *sql.DB
	profile engineProfile
}

// newSQLEngine opens a pool for the given driver. database/sql pools
// are safe for concurrent use and hand out connections on demand.
func newSQLEngine(driverName, dsn string, profile engineProfile, opts PoolOptions) (*sqlEngine, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = 5
	}
	db.SetMaxOpenConns(maxConns)
	idle := 2
	if idle > maxConns {
		idle = maxConns
	}
	db.SetMaxIdleConns(idle)
	db.SetConnMaxLifetime(10 * time.Minute)

	return &sqlEngine{db: db, profile: profile}, nil
}

func (e *sqlEngine) Ping(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

func (e *sqlEngine) Query(ctx context.Context, sqlText string) (*domain.QueryResult, error) {
	rows, err := e.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, resultRows, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	// Zero rows degrade to empty columns and rows by contract.
	if len(resultRows) == 0 {
		columns = []domain.ColumnInfo{}
	}
	return &domain.QueryResult{
		Columns:  columns,
		Rows:     resultRows,
		RowCount: len(resultRows),
	}, nil
}

func (e *sqlEngine) ListTables(ctx context.Context, database string) ([]domain.TableInfo, error) {
	var rows *sql.Rows
	var err error
	if e.profile.tablesBindDatabase {
		rows, err = e.db.QueryContext(ctx, e.profile.tablesQuery, database)
	} else {
		rows, err = e.db.QueryContext(ctx, e.profile.tablesQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	tables := []domain.TableInfo{}
	for rows.Next() {
		var name, schema, tableType string
		if err := rows.Scan(&name, &schema, &tableType); err != nil {
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		kind := "table"
		if tableType == "VIEW" {
			kind = "view"
		}
		tables = append(tables, domain.TableInfo{Name: name, Schema: schema, Type: kind})
	}
	return tables, rows.Err()
}

func (e *sqlEngine) TableData(ctx context.Context, schema, table string, limit, offset int64) (*domain.TableDataResult, error) {
	target := e.profile.quoteIdent(table)
	if schema != "" {
		target = e.profile.quoteIdent(schema) + "." + target
	}

	pageQuery := fmt.Sprintf("SELECT * FROM %s LIMIT %s OFFSET %s",
		target, e.profile.placeholder(1), e.profile.placeholder(2))
	rows, err := e.db.QueryContext(ctx, pageQuery, limit, offset)
	if err != nil {
		return nil, err
	}
	columns, resultRows, err := collectRows(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", target)
	if err := e.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}

	return &domain.TableDataResult{
		Columns:    columns,
		Rows:       resultRows,
		TotalCount: total,
		HasMore:    offset+int64(len(resultRows)) < total,
	}, nil
}

func (e *sqlEngine) Close() error {
	return e.db.Close()
}

// collectRows drains a result set into column metadata plus normalized
// row maps. The caller owns closing rows.
func collectRows(rows *sql.Rows) ([]domain.ColumnInfo, []map[string]any, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, nil, fmt.Errorf("columns: %w", err)
	}

	columns := make([]domain.ColumnInfo, len(types))
	for i, ct := range types {
		nullable, ok := ct.Nullable()
		if !ok {
			// Driver can't say (Postgres family) — advisory only.
			nullable = true
		}
		columns[i] = domain.ColumnInfo{
			Name:     ct.Name(),
			DataType: ct.DatabaseTypeName(),
			Nullable: nullable,
		}
	}

	resultRows := []map[string]any{}
	values := make([]any, len(types))
	ptrs := make([]any, len(types))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]any, len(types))
		for i, ct := range types {
			row[ct.Name()] = normalizeValue(values[i])
		}
		resultRows = append(resultRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate: %w", err)
	}
	return columns, resultRows, nil
}
