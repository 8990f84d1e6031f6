package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Matcher:
// - Patterns match as literal substrings
// - Regex metacharacters are inert
// - Case sensitivity applies to both pattern and line
// - Repeated patterns reuse the compiled form

func TestMatcher_LiteralSubstring(t *testing.T) {
	t.Parallel()

	m := NewMatcher(true)

	assert.True(t, m.Matches("auth", "user authentication flow"))
	assert.True(t, m.Matches("flow", "user authentication flow"))
	assert.False(t, m.Matches("login", "user authentication flow"))
}

func TestMatcher_MetacharactersAreInert(t *testing.T) {
	t.Parallel()

	m := NewMatcher(true)

	// "a.b*" must match only the literal text, never as a regex.
	assert.True(t, m.Matches("a.b*", "value a.b* appears here"))
	assert.False(t, m.Matches("a.b*", "axbbb does not contain it"))

	assert.True(t, m.Matches("f(x)", "call f(x) now"))
	assert.False(t, m.Matches("f(x)", "call fx now"))
}

func TestMatcher_CaseInsensitive(t *testing.T) {
	t.Parallel()

	m := NewMatcher(false)

	assert.True(t, m.Matches("ERROR", "an error occurred"))
	assert.True(t, m.Matches("error", "an ERROR occurred"))
}

func TestMatcher_CaseSensitive(t *testing.T) {
	t.Parallel()

	m := NewMatcher(true)

	assert.False(t, m.Matches("ERROR", "an error occurred"))
	assert.True(t, m.Matches("error", "an error occurred"))
}

func TestMatcher_RepeatedPattern(t *testing.T) {
	t.Parallel()

	m := NewMatcher(false)

	for i := 0; i < 3; i++ {
		assert.True(t, m.Matches("needle", "hay needle hay"))
	}
	assert.Len(t, m.compiled, 1)
}
