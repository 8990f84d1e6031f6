package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Chunker:
// - Empty text yields no chunks
// - Text under the chunk size becomes a single chunk
// - Larger text splits at the token budget with line overlap
// - A single oversized line becomes its own chunk
// - Line ranges are 1-based inclusive and always advance

func TestChunker_Empty(t *testing.T) {
	t.Parallel()

	c := NewChunker(wordCounter{}, 10, 2)

	assert.Empty(t, c.ChunkText(""))
	assert.Empty(t, c.ChunkText("  \n \n"))
}

func TestChunker_SingleChunk(t *testing.T) {
	t.Parallel()

	c := NewChunker(wordCounter{}, 10, 2)
	chunks := c.ChunkText(numberedLines(5))

	require.Len(t, chunks, 1)
	assert.Equal(t, 1, chunks[0].StartLine)
	assert.Equal(t, 5, chunks[0].EndLine)
	assert.Equal(t, 5, chunks[0].Tokens)
}

func TestChunker_SplitsWithOverlap(t *testing.T) {
	t.Parallel()

	// 7 one-token lines, chunk size 3, overlap 1: each chunk repeats the
	// previous chunk's last line.
	c := NewChunker(wordCounter{}, 3, 1)
	chunks := c.ChunkText(numberedLines(7))

	require.Len(t, chunks, 3)

	assert.Equal(t, 1, chunks[0].StartLine)
	assert.Equal(t, 3, chunks[0].EndLine)
	assert.Equal(t, 3, chunks[1].StartLine)
	assert.Equal(t, 5, chunks[1].EndLine)
	assert.Equal(t, 5, chunks[2].StartLine)
	assert.Equal(t, 7, chunks[2].EndLine)
}

func TestChunker_OversizedLine(t *testing.T) {
	t.Parallel()

	c := NewChunker(wordCounter{}, 3, 1)
	text := "a b c d e f g h"
	chunks := c.ChunkText(text)

	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
	assert.Equal(t, 8, chunks[0].Tokens)
}

func TestChunker_AlwaysAdvances(t *testing.T) {
	t.Parallel()

	// Overlap nearly as large as the chunk size must still make progress.
	c := NewChunker(wordCounter{}, 2, 1)
	chunks := c.ChunkText(numberedLines(6))

	require.NotEmpty(t, chunks)
	for i := 1; i < len(chunks); i++ {
		assert.Greater(t, chunks[i].StartLine, chunks[i-1].StartLine)
	}
	assert.Equal(t, 6, chunks[len(chunks)-1].EndLine)

	// Every line is covered.
	joined := strings.Join([]string{chunks[0].Text, chunks[len(chunks)-1].Text}, "\n")
	assert.Contains(t, joined, "l1")
	assert.Contains(t, joined, "l6")
}
