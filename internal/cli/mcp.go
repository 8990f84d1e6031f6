package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/contextf"
	"github.com/mvp-joe/contextf/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve context assembly as an MCP tool over stdio",
	Long: `MCP starts a Model Context Protocol server on stdio exposing the
contextf_build_context tool, for use by MCP-capable LLM clients.

Example Claude Desktop / client configuration:
  { "command": "contextf", "args": ["mcp", "--root", "/path/to/project"] }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdio carries the protocol; progress output would corrupt it.
	builder, err := contextf.New(cfg, contextf.WithReporter(contextf.NoopReporter{}))
	if err != nil {
		return err
	}

	srv, err := mcp.NewServer(builder, Version)
	if err != nil {
		return err
	}
	return srv.Serve(cmd.Context())
}
