package mcpserver

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"mesagrid/internal/service"
)

// Server is the command surface of the connection core: every registry
// operation exposed as an MCP tool over stdio.
type Server struct {
	mcp         *server.MCPServer
	connections *service.ConnectionManager
}

// New creates and configures the MCP server with all connection tools.
func New(connections *service.ConnectionManager) *Server {
	s := &Server{connections: connections}

	s.mcp = server.NewMCPServer(
		"mesagrid",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerConnectionTools()
	s.registerQueryTools()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout and blocks until the
// transport closes.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}
