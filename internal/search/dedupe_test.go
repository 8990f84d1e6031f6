package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Dedupe:
// - Keeps first occurrence of each normalized text
// - Normalization is trim + casefold, pattern identity ignored
// - Output is a stable subsequence capped at limit
// - Idempotent: dedupe(dedupe(m, k), k) == dedupe(m, k)

func TestDedupe_KeepsFirstOccurrence(t *testing.T) {
	t.Parallel()

	matches := []Match{
		{LineNum: 1, Text: "hello world", Pattern: "hello"},
		{LineNum: 5, Text: "  Hello World  ", Pattern: "world"},
		{LineNum: 9, Text: "something else", Pattern: "hello"},
	}

	unique := Dedupe(matches, 10)

	require.Len(t, unique, 2)
	assert.Equal(t, 1, unique[0].LineNum)
	assert.Equal(t, 9, unique[1].LineNum)
}

func TestDedupe_PatternIdentityIgnored(t *testing.T) {
	t.Parallel()

	// Same trimmed/case-folded text from different patterns collapses to
	// the first match regardless of pattern.
	matches := []Match{
		{LineNum: 3, Text: "shared line", Pattern: "alpha"},
		{LineNum: 7, Text: "SHARED LINE", Pattern: "beta"},
	}

	unique := Dedupe(matches, 10)

	require.Len(t, unique, 1)
	assert.Equal(t, "alpha", unique[0].Pattern)
}

func TestDedupe_Limit(t *testing.T) {
	t.Parallel()

	matches := []Match{
		{LineNum: 1, Text: "a"},
		{LineNum: 2, Text: "b"},
		{LineNum: 3, Text: "c"},
		{LineNum: 4, Text: "d"},
	}

	unique := Dedupe(matches, 2)

	require.Len(t, unique, 2)
	assert.Equal(t, "a", unique[0].Text)
	assert.Equal(t, "b", unique[1].Text)
}

func TestDedupe_Idempotent(t *testing.T) {
	t.Parallel()

	matches := []Match{
		{LineNum: 1, Text: "alpha"},
		{LineNum: 2, Text: "ALPHA"},
		{LineNum: 3, Text: "beta"},
		{LineNum: 4, Text: "gamma"},
	}

	once := Dedupe(matches, 3)
	twice := Dedupe(once, 3)

	assert.Equal(t, once, twice)
}

func TestDedupe_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Dedupe(nil, 3))
	assert.Empty(t, Dedupe([]Match{{Text: "x"}}, 0))
}

func TestPatterns_DistinctFirstSeen(t *testing.T) {
	t.Parallel()

	matches := []Match{
		{Pattern: "b"},
		{Pattern: "a"},
		{Pattern: "b"},
		{Pattern: "c"},
	}

	assert.Equal(t, []string{"b", "a", "c"}, Patterns(matches))
}
