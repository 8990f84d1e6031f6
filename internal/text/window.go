// Package text implements the windowing half of context assembly: extracting
// token-bounded line windows around matches, merging overlapping windows,
// deciding between whole-file and windowed inclusion, and chunking text into
// token-budgeted line ranges.
package text

import (
	"strings"

	"github.com/mvp-joe/contextf/internal/token"
)

// defaultWindowLines is the per-side line fallback when the tokens-per-line
// ratio is degenerate (empty file or zero tokens).
const defaultWindowLines = 50

// Window is a line-range slice of a file's text surrounding a match.
// StartLine is 0-based inclusive, EndLine is 0-based exclusive.
type Window struct {
	Text      string
	StartLine int
	EndLine   int
}

// ExtractWindow extracts a context window around targetLine (1-based) sized
// to approximately windowTokens tokens on each side.
//
// The window size is derived from the file's average tokens-per-line ratio,
// not re-measured after slicing: exact sizing would need repeated tokenizer
// calls over candidate slices, and the caller re-measures the merged result
// in aggregate anyway.
func ExtractWindow(counter token.Counter, fullText string, targetLine, windowTokens int) Window {
	lines := strings.Split(fullText, "\n")
	totalLines := len(lines)

	if targetLine > totalLines {
		targetLine = totalLines
	}

	linesForWindow := defaultWindowLines
	if totalLines > 0 {
		totalTokens := counter.Count(fullText)
		tokensPerLine := float64(totalTokens) / float64(totalLines)
		if tokensPerLine > 0 {
			linesForWindow = int(float64(windowTokens) / tokensPerLine)
		}
	}

	startLine := max(0, targetLine-linesForWindow-1)
	endLine := min(totalLines, targetLine+linesForWindow)

	return Window{
		Text:      strings.Join(lines[startLine:endLine], "\n"),
		StartLine: startLine,
		EndLine:   endLine,
	}
}
