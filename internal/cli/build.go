package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/contextf"
)

var (
	buildPatterns     []string
	buildDocsPath     string
	buildFilePatterns []string
	buildJSON         bool
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [query]",
	Short: "Build context from documents matching a query or patterns",
	Long: `Build searches the configured documents tree for patterns, extracts
context windows around matches, and assembles a token-budgeted context blob.

Patterns come from --pattern flags, or are generated from the query via the
configured LLM (falling back to the literal query when generation is
disabled or unavailable).

Examples:
  # Build context for a natural language query
  contextf build "how does authentication work"

  # Build context for explicit patterns
  contextf build --pattern login --pattern "session token"

  # Override the documents root and emit JSON
  contextf build "rate limits" --docs-path ./docs --json
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringArrayVarP(&buildPatterns, "pattern", "p", nil, "explicit search pattern (repeatable, bypasses pattern generation)")
	buildCmd.Flags().StringVar(&buildDocsPath, "docs-path", "", "documents root (overrides config)")
	buildCmd.Flags().StringArrayVar(&buildFilePatterns, "file-pattern", nil, "file glob pattern to scan (repeatable, overrides config)")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "emit the full result as JSON")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	builder, err := contextf.New(cfg, contextf.WithReporter(NewCLIReporter(quietFlag || buildJSON)))
	if err != nil {
		return err
	}

	req := contextf.Request{
		Patterns:     buildPatterns,
		DocsPath:     buildDocsPath,
		FilePatterns: buildFilePatterns,
	}
	if len(args) > 0 {
		req.Query = args[0]
	}

	result, err := builder.BuildContext(ctx, req)
	if err != nil {
		return err
	}

	if buildJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(result.Context)
	if quietFlag {
		return nil
	}

	fmt.Fprintf(os.Stderr, "\n%d tokens from %d file(s)\n", result.ContextTokens, len(result.FilesUsed))
	paths := make([]string, 0, len(result.FilesUsed))
	for path := range result.FilesUsed {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		usage := result.FilesUsed[path]
		fmt.Fprintf(os.Stderr, "  %s: %d matches, %d tokens (%s)\n",
			path, usage.Matches, usage.Tokens, strings.Join(usage.PatternsFound, ", "))
	}
	return nil
}
