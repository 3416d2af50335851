package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	mcpserver "mesagrid/internal/mcp"
	"mesagrid/internal/secret"
	"mesagrid/internal/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	secrets := secret.NewKeychainStore()
	connections := service.NewConnectionManager(secrets)
	defer connections.CloseAll()

	srv := mcpserver.New(connections)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ServeStdio()
	}()

	select {
	case <-ctx.Done():
		log.Println("[MCP] Shutting down...")
	case err := <-errCh:
		if err != nil {
			log.Fatalf("MCP server error: %v", err)
		}
	}
}
