package contextf

// Reporter provides callbacks for observing context assembly progress.
// Implementations can display progress bars, log messages, or remain
// silent. The library itself never writes to stdout or stderr.
type Reporter interface {
	// OnPatternFallback is called when LLM pattern generation is
	// unavailable or failed and the raw query is used instead. err may be
	// nil when generation is simply disabled.
	OnPatternFallback(query string, err error)

	// OnSearchStart is called before file search begins.
	OnSearchStart(patterns []string, docsPath string, filePatterns []string)

	// OnSearchComplete is called with the number of files containing
	// matches.
	OnSearchComplete(fileCount int)

	// OnFileProcessing is called before a file's context is built.
	OnFileProcessing(path string, matchCount int)

	// OnFileIncluded is called when a file's context is admitted into the
	// aggregate.
	OnFileIncluded(path string, tokens int)

	// OnFileSkipped is called when a file's context would overflow the
	// remaining budget. Assembly stops after the first skip.
	OnFileSkipped(path string, tokens int)

	// OnBudgetExhausted is called when the accumulated total reaches the
	// configured ceiling before all files were processed.
	OnBudgetExhausted(totalTokens, maxTokens int)
}

// NoopReporter is a reporter that does nothing.
type NoopReporter struct{}

func (NoopReporter) OnPatternFallback(query string, err error)                           {}
func (NoopReporter) OnSearchStart(patterns []string, docsPath string, globs []string)    {}
func (NoopReporter) OnSearchComplete(fileCount int)                                      {}
func (NoopReporter) OnFileProcessing(path string, matchCount int)                        {}
func (NoopReporter) OnFileIncluded(path string, tokens int)                              {}
func (NoopReporter) OnFileSkipped(path string, tokens int)                               {}
func (NoopReporter) OnBudgetExhausted(totalTokens, maxTokens int)                        {}
