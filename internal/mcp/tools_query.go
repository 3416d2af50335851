package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"mesagrid/internal/domain"
)

func (s *Server) registerQueryTools() {
	s.mcp.AddTool(mcp.NewTool("execute_query",
		mcp.WithDescription("Run a SQL statement on a live connection. The statement is executed verbatim; embed LIMIT/OFFSET in the SQL itself."),
		mcp.WithString("connectionId", mcp.Description("Connection ID"), mcp.Required()),
		mcp.WithString("sql", mcp.Description("SQL to execute"), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Advisory row limit (default 100)")),
		mcp.WithNumber("offset", mcp.Description("Advisory row offset (default 0)")),
	), s.handleExecuteQuery)

	s.mcp.AddTool(mcp.NewTool("list_tables",
		mcp.WithDescription("List tables and views on a live connection"),
		mcp.WithString("connectionId", mcp.Description("Connection ID"), mcp.Required()),
	), s.handleListTables)

	s.mcp.AddTool(mcp.NewTool("get_table_data",
		mcp.WithDescription("Read one page of rows from a table, with total count"),
		mcp.WithString("connectionId", mcp.Description("Connection ID"), mcp.Required()),
		mcp.WithString("tableName", mcp.Description("Table name"), mcp.Required()),
		mcp.WithString("schema", mcp.Description("Schema (default: public, or the database for MySQL)")),
		mcp.WithNumber("limit", mcp.Description("Page size (default 100)")),
		mcp.WithNumber("offset", mcp.Description("Row offset (default 0)")),
	), s.handleGetTableData)
}

func (s *Server) handleExecuteQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	params := domain.ExecuteQueryParams{
		ConnectionID: req.GetString("connectionId", ""),
		SQL:          req.GetString("sql", ""),
		Limit:        int64(getFloat(args, "limit", domain.DefaultQueryLimit)),
		Offset:       int64(getFloat(args, "offset", 0)),
	}
	if params.ConnectionID == "" || params.SQL == "" {
		return nil, fmt.Errorf("connectionId and sql are required")
	}

	result, err := s.connections.ExecuteQuery(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	return jsonResult(result)
}

func (s *Server) handleListTables(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	connID := req.GetString("connectionId", "")
	if connID == "" {
		return nil, fmt.Errorf("connectionId is required")
	}
	tables, err := s.connections.ListTables(ctx, connID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return jsonResult(tables)
}

func (s *Server) handleGetTableData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	params := domain.GetTableDataParams{
		ConnectionID: req.GetString("connectionId", ""),
		TableName:    req.GetString("tableName", ""),
		Schema:       req.GetString("schema", ""),
		Limit:        int64(getFloat(args, "limit", domain.DefaultQueryLimit)),
		Offset:       int64(getFloat(args, "offset", 0)),
	}
	if params.ConnectionID == "" || params.TableName == "" {
		return nil, fmt.Errorf("connectionId and tableName are required")
	}

	result, err := s.connections.GetTableData(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("get table data: %w", err)
	}
	return jsonResult(result)
}
