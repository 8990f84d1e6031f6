package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for CachedCounter:
// - Returns the same counts as the wrapped counter
// - Repeated texts are served without re-invoking the wrapped counter
// - Empty text is handled

// trackingCounter counts whitespace-separated fields and records how many
// times Count was invoked.
type trackingCounter struct {
	calls int
}

func (c *trackingCounter) Count(text string) int {
	c.calls++
	return len(strings.Fields(text))
}

func TestCachedCounter_SameCounts(t *testing.T) {
	t.Parallel()

	inner := &trackingCounter{}
	cached, err := NewCachedCounter(inner, 0)
	require.NoError(t, err)
	defer cached.Close()

	assert.Equal(t, 3, cached.Count("one two three"))
	assert.Equal(t, 0, cached.Count(""))
}

func TestCachedCounter_ServesRepeatsFromCache(t *testing.T) {
	t.Parallel()

	inner := &trackingCounter{}
	cached, err := NewCachedCounter(inner, 0)
	require.NoError(t, err)
	defer cached.Close()

	text := "the same full file text"
	first := cached.Count(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, cached.Count(text))
	}

	assert.Equal(t, 1, inner.calls)
}
