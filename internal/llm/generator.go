// Package llm provides optional LLM-backed search pattern generation.
// The context pipeline treats it as a fallible external capability: any
// failure degrades to using the raw query as the single pattern.
package llm

import "context"

// PatternGenerator turns a natural-language query into literal search
// patterns.
type PatternGenerator interface {
	// GeneratePatterns returns up to maxPatterns patterns for query.
	GeneratePatterns(ctx context.Context, query string, maxPatterns int) ([]string, error)
}
