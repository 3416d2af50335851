package dbclient

import (
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

// mysqlProfile covers the MySQL family. The table listing is filtered
// to the configured database, so the query binds one parameter.
var mysqlProfile = engineProfile{
	tablesQuery: `SELECT TABLE_NAME, TABLE_SCHEMA, TABLE_TYPE
		FROM information_schema.tables
		WHERE TABLE_SCHEMA = ?
		ORDER BY TABLE_NAME`,
	tablesBindDatabase: true,
	quoteIdent: func(name string) string {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	},
	placeholder: func(n int) string {
		return "?"
	},
}

// buildMySQLDSN constructs a MySQL DSN from a Target.
// parseTime keeps date columns out of the text probe: they surface as
// time.Time and normalize to null like other non-scalar types.
func buildMySQLDSN(t Target) string {
	port := t.Port
	if port == 0 {
		port = 3306
	}
	// Format: user:password@tcp(host:port)/dbname?parseTime=true
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		t.Username, t.Password, t.Host, port, t.Database,
	)
}
