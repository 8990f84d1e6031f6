package search

import "strings"

// Dedupe collapses matches whose trimmed, case-folded line text is
// identical, keeping the first occurrence of each. The originating pattern
// is not part of the key: two matches with equal normalized text but
// different patterns still collapse to one.
//
// The output is a stable subsequence of the input, capped at limit unique
// matches. Dedupe is idempotent.
func Dedupe(matches []Match, limit int) []Match {
	if len(matches) == 0 || limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	unique := make([]Match, 0, min(len(matches), limit))

	for _, m := range matches {
		key := strings.ToLower(strings.TrimSpace(m.Text))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, m)
		if len(unique) >= limit {
			break
		}
	}

	return unique
}

// Patterns returns the distinct originating patterns of the given matches,
// in first-seen order.
func Patterns(matches []Match) []string {
	seen := make(map[string]struct{}, len(matches))
	patterns := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.Pattern]; ok {
			continue
		}
		seen[m.Pattern] = struct{}{}
		patterns = append(patterns, m.Pattern)
	}
	return patterns
}
