package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/contextf/internal/token"
)

var (
	tokensFilePatterns []string
	tokensJSON         bool
)

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens [directory]",
	Short: "Report token counts for files in a directory",
	Long: `Tokens counts tokens in every file matching the configured file
patterns under a directory, using the configured tokenizer encoding.
Unreadable files are skipped and reported, not fatal.

Examples:
  # Count tokens under the configured docs path
  contextf tokens

  # Count tokens in a specific directory for specific file types
  contextf tokens ./docs --file-pattern '*.md' --file-pattern '*.rst'
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringArrayVar(&tokensFilePatterns, "file-pattern", nil, "file glob pattern to count (repeatable, overrides config)")
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "emit the report as JSON")
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := cfg.Search.DocsPath
	if len(args) > 0 {
		dir = args[0]
	}
	filePatterns := tokensFilePatterns
	if len(filePatterns) == 0 {
		filePatterns = cfg.Search.FilePatterns
	}

	counter, err := token.NewCounter(cfg.Tokens.Encoding)
	if err != nil {
		return err
	}

	report, err := token.CountDirectory(counter, dir, filePatterns)
	if err != nil {
		return err
	}

	if tokensJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, f := range report.Files {
		fmt.Printf("%10d  %s\n", f.Tokens, f.Path)
	}
	for _, s := range report.Skipped {
		fmt.Fprintf(os.Stderr, "skipped %s: %s\n", s.Path, s.Reason)
	}
	fmt.Printf("%10d  total (%d files)\n", report.TotalTokens, report.TotalFiles)
	return nil
}
