package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/contextf/internal/search"
)

// Test Plan for FileContext:
// - Empty/whitespace-only files yield ("", 0)
// - Files under the token ceiling return verbatim, matches irrelevant
// - Large files with no matches contribute nothing
// - Large files produce merged windows around matches
// - merge disabled falls back to blank-line concatenation

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileContext_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "   \n\t\n")
	fc := NewFileContext(wordCounter{}, 100, 10, true)

	out, tokens, err := fc.Build(path, []search.Match{{LineNum: 1, Text: "x"}})

	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, 0, tokens)
}

func TestFileContext_WholeFileShortCircuit(t *testing.T) {
	t.Parallel()

	content := "one two three\nfour five\n"
	path := writeTemp(t, content)
	fc := NewFileContext(wordCounter{}, 10, 2, true)

	// Matches (even bogus ones) are irrelevant in this branch.
	out, tokens, err := fc.Build(path, nil)

	require.NoError(t, err)
	assert.Equal(t, content, out)
	assert.Equal(t, 5, tokens)
}

func TestFileContext_LargeFileNoMatches(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, numberedLines(50))
	fc := NewFileContext(wordCounter{}, 10, 2, true)

	out, tokens, err := fc.Build(path, nil)

	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, 0, tokens)
}

func TestFileContext_WindowedAroundMatches(t *testing.T) {
	t.Parallel()

	// 10 one-token lines with a ceiling of 5 forces windowing.
	path := writeTemp(t, numberedLines(10))
	fc := NewFileContext(wordCounter{}, 5, 2, true)

	matches := []search.Match{
		{LineNum: 2, Text: "l2"},
		{LineNum: 9, Text: "l9"},
	}

	out, tokens, err := fc.Build(path, matches)

	require.NoError(t, err)
	assert.Equal(t, "l1\nl2\nl3\nl4\n\nl7\nl8\nl9\nl10", out)
	assert.Equal(t, 8, tokens)
}

func TestFileContext_MergeDisabled(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, numberedLines(10))
	fc := NewFileContext(wordCounter{}, 5, 2, false)

	// Two overlapping windows stay separate segments when merging is off.
	matches := []search.Match{
		{LineNum: 4, Text: "l4"},
		{LineNum: 5, Text: "l5"},
	}

	out, _, err := fc.Build(path, matches)

	require.NoError(t, err)
	assert.Contains(t, out, "\n\n")
}

func TestFileContext_ReadError(t *testing.T) {
	t.Parallel()

	fc := NewFileContext(wordCounter{}, 5, 2, true)
	_, _, err := fc.Build(filepath.Join(t.TempDir(), "missing.md"), nil)

	assert.Error(t, err)
}
