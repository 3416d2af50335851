package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"mesagrid/internal/domain"
)

func (s *Server) registerConnectionTools() {
	s.mcp.AddTool(mcp.NewTool("create_connection",
		mcp.WithDescription("Save a new database connection. The password goes to the OS keychain, never to the config."),
		mcp.WithString("name", mcp.Description("Display name"), mcp.Required()),
		mcp.WithString("type", mcp.Description("Engine type: postgres or mysql"), mcp.Required()),
		mcp.WithString("host", mcp.Description("Hostname"), mcp.Required()),
		mcp.WithNumber("port", mcp.Description("Port (0 for the engine default)")),
		mcp.WithString("database", mcp.Description("Database name"), mcp.Required()),
		mcp.WithString("username", mcp.Description("Username"), mcp.Required()),
		mcp.WithString("password", mcp.Description("Password")),
	), s.handleCreateConnection)

	s.mcp.AddTool(mcp.NewTool("test_connection",
		mcp.WithDescription("Check connectivity with the given parameters without saving anything"),
		mcp.WithString("type", mcp.Description("Engine type: postgres or mysql"), mcp.Required()),
		mcp.WithString("host", mcp.Description("Hostname"), mcp.Required()),
		mcp.WithNumber("port", mcp.Description("Port (0 for the engine default)")),
		mcp.WithString("database", mcp.Description("Database name"), mcp.Required()),
		mcp.WithString("username", mcp.Description("Username"), mcp.Required()),
		mcp.WithString("password", mcp.Description("Password")),
	), s.handleTestConnection)

	s.mcp.AddTool(mcp.NewTool("connect",
		mcp.WithDescription("Open a connection pool for a saved connection"),
		mcp.WithString("connectionId", mcp.Description("Connection ID"), mcp.Required()),
	), s.handleConnect)

	s.mcp.AddTool(mcp.NewTool("disconnect",
		mcp.WithDescription("Close the connection pool for a connection. Idempotent."),
		mcp.WithString("connectionId", mcp.Description("Connection ID"), mcp.Required()),
	), s.handleDisconnect)

	s.mcp.AddTool(mcp.NewTool("list_connections",
		mcp.WithDescription("List all saved database connections (passwords excluded)"),
	), s.handleListConnections)

	s.mcp.AddTool(mcp.NewTool("delete_connection",
		mcp.WithDescription("Delete a saved connection, its pool and its stored password. Idempotent."),
		mcp.WithString("connectionId", mcp.Description("Connection ID"), mcp.Required()),
	), s.handleDeleteConnection)

	s.mcp.AddTool(mcp.NewTool("is_connected",
		mcp.WithDescription("Report whether a connection has a live pool"),
		mcp.WithString("connectionId", mcp.Description("Connection ID"), mcp.Required()),
	), s.handleIsConnected)
}

func (s *Server) handleCreateConnection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	params := domain.CreateConnectionParams{
		Name:     req.GetString("name", ""),
		Type:     domain.EngineKind(req.GetString("type", "")),
		Host:     req.GetString("host", ""),
		Port:     getInt(args, "port", 0),
		Database: req.GetString("database", ""),
		Username: req.GetString("username", ""),
		Password: req.GetString("password", ""),
	}
	if params.Name == "" || params.Host == "" {
		return nil, fmt.Errorf("name and host are required")
	}

	id, err := s.connections.CreateConnection(params)
	if err != nil {
		return nil, fmt.Errorf("create connection: %w", err)
	}
	return jsonResult(map[string]string{"id": id})
}

func (s *Server) handleTestConnection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	params := domain.TestConnectionParams{
		Type:     domain.EngineKind(req.GetString("type", "")),
		Host:     req.GetString("host", ""),
		Port:     getInt(args, "port", 0),
		Database: req.GetString("database", ""),
		Username: req.GetString("username", ""),
		Password: req.GetString("password", ""),
	}
	return jsonResult(s.connections.TestConnection(ctx, params))
}

func (s *Server) handleConnect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	connID := req.GetString("connectionId", "")
	if connID == "" {
		return nil, fmt.Errorf("connectionId is required")
	}
	if err := s.connections.Connect(ctx, connID); err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return textResult("connected"), nil
}

func (s *Server) handleDisconnect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	connID := req.GetString("connectionId", "")
	if connID == "" {
		return nil, fmt.Errorf("connectionId is required")
	}
	s.connections.Disconnect(connID)
	return textResult("disconnected"), nil
}

func (s *Server) handleListConnections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.connections.ListConnections())
}

func (s *Server) handleDeleteConnection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	connID := req.GetString("connectionId", "")
	if connID == "" {
		return nil, fmt.Errorf("connectionId is required")
	}
	s.connections.DeleteConnection(connID)
	return textResult("deleted"), nil
}

func (s *Server) handleIsConnected(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	connID := req.GetString("connectionId", "")
	if connID == "" {
		return nil, fmt.Errorf("connectionId is required")
	}
	return jsonResult(map[string]bool{"connected": s.connections.IsConnected(connID)})
}
