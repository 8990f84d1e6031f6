package search

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gobwas/glob"
)

var (
	// ErrNoPatterns indicates an empty search pattern list
	ErrNoPatterns = errors.New("no search patterns provided")

	// ErrDocsPathNotFound indicates the documents root does not exist
	ErrDocsPathNotFound = errors.New("documents path does not exist")

	// ErrNoFilesMatched indicates no files matched the configured globs
	ErrNoFilesMatched = errors.New("no files matched")
)

// maxLineSize bounds line scanning for files with very long lines
// (minified JS, large JSON).
const maxLineSize = 10 * 1024 * 1024

// compiledGlob holds both the pattern string and compiled glob.
type compiledGlob struct {
	pattern string
	glob    glob.Glob
}

// Searcher scans files under a root for literal pattern occurrences.
type Searcher struct {
	matcher           *Matcher
	maxMatchesPerFile int
}

// NewSearcher creates a searcher.
// maxMatchesPerFile caps matches per file; scanning a file stops as soon as
// the cap is reached.
func NewSearcher(caseSensitive bool, maxMatchesPerFile int) *Searcher {
	return &Searcher{
		matcher:           NewMatcher(caseSensitive),
		maxMatchesPerFile: maxMatchesPerFile,
	}
}

// Search scans every file under docsPath matching any of filePatterns for
// the given patterns. The result preserves file-enumeration order; files
// producing zero matches are omitted entirely.
//
// Fails with ErrNoPatterns, ErrDocsPathNotFound, or ErrNoFilesMatched when
// the corresponding input is empty or missing. Per-file read failures are
// fatal and returned wrapped, never masked.
func (s *Searcher) Search(patterns []string, docsPath string, filePatterns []string) ([]FileMatches, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	if _, err := os.Stat(docsPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocsPathNotFound, docsPath)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", docsPath, err)
	}

	files, err := DiscoverFiles(docsPath, filePatterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: patterns %v in %s", ErrNoFilesMatched, filePatterns, docsPath)
	}

	var results []FileMatches
	for _, path := range files {
		matches, err := s.searchFile(patterns, path)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			results = append(results, FileMatches{Path: path, Matches: matches})
		}
	}

	return results, nil
}

// DiscoverFiles walks the directory tree and returns regular files matching
// any of the glob patterns, in walk order.
func DiscoverFiles(root string, filePatterns []string) ([]string, error) {
	globs := make([]compiledGlob, 0, len(filePatterns))
	for _, pattern := range filePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		globs = append(globs, compiledGlob{pattern: pattern, glob: g})
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		// Normalize path separators for glob matching
		relPath = filepath.ToSlash(relPath)

		if matchesAnyGlob(relPath, globs) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate files under %s: %w", root, err)
	}

	return files, nil
}

// matchesAnyGlob checks if a path matches any of the given patterns.
// Patterns without a path separator match against the basename at any
// depth, so "*.md" finds both "README.md" and "docs/guide.md".
func matchesAnyGlob(relPath string, globs []compiledGlob) bool {
	base := relPath
	if idx := strings.LastIndexByte(relPath, '/'); idx >= 0 {
		base = relPath[idx+1:]
	}

	for _, cg := range globs {
		if cg.glob.Match(relPath) {
			return true
		}
		if !strings.Contains(cg.pattern, "/") && cg.glob.Match(base) {
			return true
		}
	}
	return false
}

// searchFile scans a single file line by line, testing every pattern
// against every line. A line may produce one match per matching pattern.
// Scanning stops once maxMatchesPerFile matches have accumulated.
func (s *Searcher) searchFile(patterns []string, path string) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var matches []Match
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		// Malformed bytes are substituted, not fatal.
		line := strings.ToValidUTF8(scanner.Text(), "�")

		for _, pattern := range patterns {
			if !s.matcher.Matches(pattern, line) {
				continue
			}
			matches = append(matches, Match{
				LineNum: lineNum,
				Text:    strings.TrimRightFunc(line, unicode.IsSpace),
				Pattern: pattern,
			})
			if len(matches) >= s.maxMatchesPerFile {
				return matches, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return matches, nil
}
