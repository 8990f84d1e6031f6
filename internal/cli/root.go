// Package cli implements the contextf command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/contextf/internal/config"
)

var (
	rootDir   string
	quietFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contextf",
	Short: "Assemble token-budgeted LLM context from documents",
	Long: `contextf searches a directory of documents for keyword patterns,
extracts token-bounded context windows around matches, merges overlapping
windows, and assembles a final context blob constrained by a token budget.

Configuration is read from .contextf/config.yml under the root directory,
with CONTEXTF_* environment variable overrides.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "project root containing .contextf/config.yml")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")
}

// loadConfig loads configuration from the --root directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
