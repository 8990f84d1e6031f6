package text

import (
	"strings"

	"github.com/mvp-joe/contextf/internal/token"
)

// Chunk is a token-budgeted slice of consecutive lines.
// StartLine and EndLine are 1-based and inclusive.
type Chunk struct {
	Text      string `json:"text"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Tokens    int    `json:"tokens"`
}

// Chunker splits text into line chunks of approximately chunkSize tokens
// with overlap tokens of trailing context repeated at the start of the next
// chunk.
type Chunker struct {
	counter   token.Counter
	chunkSize int
	overlap   int
}

// NewChunker creates a line chunker. chunkSize must be positive; overlap
// must be smaller than chunkSize (validated at configuration time).
func NewChunker(counter token.Counter, chunkSize, overlap int) *Chunker {
	return &Chunker{
		counter:   counter,
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// ChunkText splits text into chunks. A single line larger than the chunk
// size becomes its own chunk rather than being split mid-line.
func (c *Chunker) ChunkText(text string) []Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	lineTokens := make([]int, len(lines))
	for i, line := range lines {
		lineTokens[i] = c.counter.Count(line)
	}

	var chunks []Chunk
	start := 0
	for start < len(lines) {
		end := start
		total := 0
		for end < len(lines) && (end == start || total+lineTokens[end] <= c.chunkSize) {
			total += lineTokens[end]
			end++
		}

		chunks = append(chunks, Chunk{
			Text:      strings.Join(lines[start:end], "\n"),
			StartLine: start + 1,
			EndLine:   end,
			Tokens:    total,
		})

		if end >= len(lines) {
			break
		}

		// Step back far enough to repeat ~overlap tokens, while always
		// advancing by at least one line.
		next := end
		overlapTokens := 0
		for next > start+1 && overlapTokens+lineTokens[next-1] <= c.overlap {
			next--
			overlapTokens += lineTokens[next]
		}
		start = next
	}

	return chunks
}
