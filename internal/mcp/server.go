package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/contextf"
)

// Server manages the MCP server lifecycle.
type Server struct {
	builder *contextf.ContextBuilder
	mcp     *server.MCPServer
}

// NewServer creates an MCP server exposing the given context builder.
func NewServer(builder *contextf.ContextBuilder, version string) (*Server, error) {
	if builder == nil {
		return nil, fmt.Errorf("context builder is required")
	}

	mcpServer := server.NewMCPServer(
		"contextf-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	AddBuildContextTool(mcpServer, builder)

	return &Server{
		builder: builder,
		mcp:     mcpServer,
	}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		cancel()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
