package text

import (
	"fmt"
	"os"
	"strings"

	"github.com/mvp-joe/contextf/internal/search"
	"github.com/mvp-joe/contextf/internal/token"
)

// FileContext builds per-file context: whole file when it fits under the
// token ceiling, token-bounded windows around matches otherwise.
type FileContext struct {
	counter       token.Counter
	maxFileTokens int
	windowTokens  int
	mergeWindows  bool
}

// NewFileContext creates a per-file context builder.
func NewFileContext(counter token.Counter, maxFileTokens, windowTokens int, mergeWindows bool) *FileContext {
	return &FileContext{
		counter:       counter,
		maxFileTokens: maxFileTokens,
		windowTokens:  windowTokens,
		mergeWindows:  mergeWindows,
	}
}

// Build reads the file and returns its context text with a measured token
// count.
//
// Empty or whitespace-only content yields ("", 0). A file whose full token
// count is at or under the ceiling is returned verbatim regardless of match
// positions. A larger file contributes one window per deduplicated match,
// merged or blank-line concatenated depending on configuration; with no
// matches it contributes nothing.
func (fc *FileContext) Build(path string, matches []search.Match) (string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	content := strings.ToValidUTF8(string(data), "�")

	if strings.TrimSpace(content) == "" {
		return "", 0, nil
	}

	fileTokens := fc.counter.Count(content)
	if fileTokens <= fc.maxFileTokens {
		return content, fileTokens, nil
	}

	if len(matches) == 0 {
		return "", 0, nil
	}

	windows := make([]Window, 0, len(matches))
	for _, m := range matches {
		windows = append(windows, ExtractWindow(fc.counter, content, m.LineNum, fc.windowTokens))
	}

	var merged string
	if fc.mergeWindows {
		merged = MergeWindows(windows)
	} else {
		merged = ConcatWindows(windows)
	}

	return merged, fc.counter.Count(merged), nil
}
