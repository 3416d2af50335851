package dbclient

import (
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

// postgresProfile covers the Postgres family. Nullability is not
// reported by the driver, so columns degrade to nullable=true.
var postgresProfile = engineProfile{
	tablesQuery: `SELECT table_name, table_schema, table_type
		FROM information_schema.tables
		WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
		ORDER BY table_schema, table_name`,
	tablesBindDatabase: false,
	quoteIdent: func(name string) string {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	},
	placeholder: func(n int) string {
		return fmt.Sprintf("$%d", n)
	},
}

// buildPostgresDSN constructs a Postgres connection string from a Target.
func buildPostgresDSN(t Target) string {
	port := t.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		t.Host, port, t.Username, t.Password, t.Database,
	)
}
