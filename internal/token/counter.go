// Package token provides token counting for context budgeting.
// Counts come from a tiktoken encoding selected by name, optionally fronted
// by a size-bounded cache for repeated counts of the same text.
package token

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Counter counts tokens in text.
type Counter interface {
	// Count returns the number of tokens in text.
	Count(text string) int
}

type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewCounter creates a Counter backed by the named tiktoken encoding
// (e.g. "cl100k_base"). Initialization fails if the encoding is unknown or
// its vocabulary cannot be loaded.
func NewCounter(encodingName string) (Counter, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer with encoding %q: %w", encodingName, err)
	}
	return &tiktokenCounter{encoding: enc}, nil
}

func (c *tiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(c.encoding.Encode(text, nil, nil))
}
