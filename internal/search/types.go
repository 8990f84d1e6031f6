// Package search finds literal pattern occurrences in files under a
// document root. It powers the first stage of context assembly: glob-based
// file discovery, line-by-line pattern scanning, and match deduplication.
package search

// Match is a single pattern occurrence on a specific line of a file.
// LineNum is 1-based. Text is the line with trailing whitespace stripped.
type Match struct {
	LineNum int    `json:"line_num"`
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
}

// FileMatches pairs a file path with its matches in scan order
// (top-to-bottom of the file, patterns tested in caller-supplied order
// per line).
type FileMatches struct {
	Path    string
	Matches []Match
}

// ToMap converts an ordered match list into a path-keyed map.
// Files with zero matches are never present in the input, so every map
// value is non-empty.
func ToMap(files []FileMatches) map[string][]Match {
	m := make(map[string][]Match, len(files))
	for _, fm := range files {
		m[fm.Path] = fm.Matches
	}
	return m
}
