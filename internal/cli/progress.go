package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"
)

// CLIReporter implements contextf.Reporter with log output and a progress
// bar over the files containing matches.
type CLIReporter struct {
	quiet   bool
	fileBar *progressbar.ProgressBar
}

// NewCLIReporter creates a new CLI progress reporter.
func NewCLIReporter(quiet bool) *CLIReporter {
	return &CLIReporter{quiet: quiet}
}

func (c *CLIReporter) OnPatternFallback(query string, err error) {
	if c.quiet {
		return
	}
	if err != nil {
		log.Printf("Pattern generation failed, using query as pattern: %v", err)
		return
	}
	log.Printf("Pattern generation disabled, using query as pattern")
}

func (c *CLIReporter) OnSearchStart(patterns []string, docsPath string, filePatterns []string) {
	if c.quiet {
		return
	}
	log.Printf("Search patterns: %v", patterns)
	log.Printf("Searching in %s (%v)", docsPath, filePatterns)
}

func (c *CLIReporter) OnSearchComplete(fileCount int) {
	if c.quiet {
		return
	}
	log.Printf("Found matches in %d file(s)", fileCount)
	if fileCount == 0 {
		return
	}
	c.fileBar = progressbar.NewOptions(fileCount,
		progressbar.OptionSetDescription("Building context"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIReporter) OnFileProcessing(path string, matchCount int) {
	if c.quiet {
		return
	}
	if c.fileBar != nil {
		c.fileBar.Add(1)
	}
}

func (c *CLIReporter) OnFileIncluded(path string, tokens int) {}

func (c *CLIReporter) OnFileSkipped(path string, tokens int) {
	if c.quiet {
		return
	}
	log.Printf("Skipping %s (%d tokens would overflow the budget)", path, tokens)
}

func (c *CLIReporter) OnBudgetExhausted(totalTokens, maxTokens int) {
	if c.quiet {
		return
	}
	log.Printf("Reached maximum context limit (%d of %d tokens)", totalTokens, maxTokens)
}
