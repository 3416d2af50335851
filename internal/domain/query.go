package domain

// DefaultQueryLimit is the advisory row limit applied when a caller
// omits one. The core never rewrites caller SQL; the limit rides along
// for callers that embed it themselves.
const DefaultQueryLimit = 100

// ExecuteQueryParams are the inputs for running ad-hoc SQL on a live
// connection. Limit and Offset are advisory: the statement is executed
// verbatim.
type ExecuteQueryParams struct {
	ConnectionID string `json:"connectionId"`
	SQL          string `json:"sql"`
	Limit        int64  `json:"limit"`
	Offset       int64  `json:"offset"`
}

// ColumnInfo describes one result column. Nullable is best-effort: the
// Postgres driver cannot report it, so it degrades to true.
type ColumnInfo struct {
	Name     string `json:"name"`
	DataType string `json:"dataType"`
	Nullable bool   `json:"nullable"`
}

// QueryResult is the engine-agnostic shape of a query's output. Each row
// maps column name to a normalized value (nil, bool, int64, float64, or
// string).
type QueryResult struct {
	Columns         []ColumnInfo     `json:"columns"`
	Rows            []map[string]any `json:"rows"`
	RowCount        int              `json:"rowCount"`
	ExecutionTimeMs int64            `json:"executionTimeMs"`
}

// TableInfo describes one table or view. RowCount is reserved and
// currently never set.
type TableInfo struct {
	Name     string `json:"name"`
	Schema   string `json:"schema"`
	Type     string `json:"type"` // "table" or "view"
	RowCount *int64 `json:"rowCount,omitempty"`
}

// GetTableDataParams are the inputs for a paginated table read. Unlike
// ExecuteQuery, the core builds this statement itself, so Limit and
// Offset are enforced.
type GetTableDataParams struct {
	ConnectionID string `json:"connectionId"`
	TableName    string `json:"tableName"`
	Schema       string `json:"schema"`
	Limit        int64  `json:"limit"`
	Offset       int64  `json:"offset"`
}

// TableDataResult is one page of table rows plus the total count.
type TableDataResult struct {
	Columns    []ColumnInfo     `json:"columns"`
	Rows       []map[string]any `json:"rows"`
	TotalCount int64            `json:"totalCount"`
	HasMore    bool             `json:"hasMore"`
}
