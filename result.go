package contextf

import "github.com/mvp-joe/contextf/internal/search"

// FileUsage records what a single file contributed to the assembled
// context. Produced once per included file and never mutated afterwards.
type FileUsage struct {
	// Matches is the number of deduplicated matches in the file.
	Matches int `json:"matches"`
	// Tokens is the measured token count of the file's contribution.
	Tokens int `json:"tokens"`
	// PatternsFound lists the distinct patterns that matched within the
	// deduplicated match list, in first-seen order.
	PatternsFound []string `json:"patterns_found"`
}

// ContextResult is the outcome of a BuildContext call.
type ContextResult struct {
	// Context is the assembled context text: blank-line separated per-file
	// blocks, each prefixed with a "--- File: <path> ---" header.
	Context string `json:"context"`
	// ContextTokens is the total token count of the included contributions.
	ContextTokens int `json:"context_tokens"`
	// FilesUsed maps file path to usage for every file included in the
	// final context.
	FilesUsed map[string]FileUsage `json:"files_used"`
	// Matches is the full pre-budget match map, including files that never
	// made it into the final context.
	Matches map[string][]search.Match `json:"matches"`
}

// emptyResult is the successful zero-match outcome.
func emptyResult() *ContextResult {
	return &ContextResult{
		Context:       "",
		ContextTokens: 0,
		FilesUsed:     map[string]FileUsage{},
		Matches:       map[string][]search.Match{},
	}
}
