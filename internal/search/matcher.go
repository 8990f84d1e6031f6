package search

import (
	"regexp"
	"strings"
)

// Matcher tests whether literal patterns occur in lines of text.
// Patterns are always matched as literal substrings: regex metacharacters
// are escaped before compilation, and if the escaped pattern still fails to
// compile the matcher falls back to plain substring containment.
type Matcher struct {
	caseSensitive bool
	compiled      map[string]*regexp.Regexp
}

// NewMatcher creates a matcher with the given case sensitivity.
func NewMatcher(caseSensitive bool) *Matcher {
	return &Matcher{
		caseSensitive: caseSensitive,
		compiled:      make(map[string]*regexp.Regexp),
	}
}

// Matches reports whether pattern occurs in line as a literal substring.
func (m *Matcher) Matches(pattern, line string) bool {
	re, ok := m.compiled[pattern]
	if !ok {
		re = m.compile(pattern)
		m.compiled[pattern] = re
	}
	if re != nil {
		return re.MatchString(line)
	}

	// Fallback: direct substring containment.
	if m.caseSensitive {
		return strings.Contains(line, pattern)
	}
	return strings.Contains(strings.ToLower(line), strings.ToLower(pattern))
}

// compile builds the literal-substring regexp for a pattern.
// Returns nil when the escaped pattern is rejected by the regexp engine,
// which routes matching through the substring fallback.
func (m *Matcher) compile(pattern string) *regexp.Regexp {
	expr := regexp.QuoteMeta(pattern)
	if !m.caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}
