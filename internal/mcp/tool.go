// Package mcp exposes context assembly as an MCP tool over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/contextf"
)

// AddBuildContextTool registers the contextf_build_context tool with an MCP
// server. This function is composable - it can be combined with other tool
// registrations.
func AddBuildContextTool(s *server.MCPServer, builder *contextf.ContextBuilder) {
	tool := mcp.NewTool(
		"contextf_build_context",
		mcp.WithDescription("Search a documentation tree for patterns and assemble a token-budgeted context blob. Returns the merged context, its token count, per-file usage, and the full match map."),
		mcp.WithString("query",
			mcp.Description("Natural language query. Search patterns are generated from it (or the query itself is used as the single literal pattern). Required unless 'patterns' is set.")),
		mcp.WithArray("patterns",
			mcp.Description("Explicit literal search patterns. Bypasses pattern generation when set.")),
		mcp.WithString("docs_path",
			mcp.Description("Documents root to search. Defaults to the configured search.docs_path.")),
		mcp.WithArray("file_patterns",
			mcp.Description("File glob patterns to scan (e.g. ['*.md', '*.txt']). Defaults to the configured search.file_patterns.")),
	)

	s.AddTool(tool, createBuildContextHandler(builder))
}

// createBuildContextHandler creates the handler function for the
// contextf_build_context tool.
func createBuildContextHandler(builder *contextf.ContextBuilder) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		var req contextf.Request

		if query, ok := argsMap["query"].(string); ok {
			req.Query = query
		}
		req.Patterns = stringSlice(argsMap["patterns"])
		if docsPath, ok := argsMap["docs_path"].(string); ok {
			req.DocsPath = docsPath
		}
		req.FilePatterns = stringSlice(argsMap["file_patterns"])

		if req.Query == "" && len(req.Patterns) == 0 {
			return mcp.NewToolResultError("either 'query' or 'patterns' is required"), nil
		}

		result, err := builder.BuildContext(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("context assembly failed: %w", err)
		}

		jsonData, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}

		// Return as text result (mcp-go convention)
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// stringSlice extracts a []string from an MCP array argument.
func stringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
