package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the directory report:
// - Counts every file matching the glob patterns
// - Totals across files
// - Non-matching files excluded
// - Missing directory and non-directory inputs are errors
// - CountFile fails on unreadable paths

func TestCountFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("one two three"), 0o644))

	count, err := CountFile(&trackingCounter{}, path)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCountFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := CountFile(&trackingCounter{}, filepath.Join(t.TempDir(), "missing.md"))

	assert.Error(t, err)
}

func TestCountDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("one two"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("three four five"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.bin"), []byte("ignored"), 0o644))

	report, err := CountDirectory(&trackingCounter{}, dir, []string{"*.md"})

	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 5, report.TotalTokens)
	assert.Len(t, report.Files, 2)
	assert.Empty(t, report.Skipped)
}

func TestCountDirectory_Nested(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sub := filepath.Join(dir, "guides")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "deep.md"), []byte("a b c"), 0o644))

	report, err := CountDirectory(&trackingCounter{}, dir, []string{"*.md"})

	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalFiles)
	assert.Equal(t, 3, report.TotalTokens)
}

func TestCountDirectory_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := CountDirectory(&trackingCounter{}, filepath.Join(t.TempDir(), "missing"), []string{"*.md"})

	assert.Error(t, err)
}

func TestCountDirectory_NotADirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := CountDirectory(&trackingCounter{}, path, []string{"*.md"})

	assert.Error(t, err)
}
