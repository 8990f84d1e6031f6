package token

import (
	"fmt"
	"os"
	"strings"

	"github.com/mvp-joe/contextf/internal/search"
)

// FileTokens records the token count of a single file.
type FileTokens struct {
	Path   string `json:"path"`
	Tokens int    `json:"tokens"`
}

// SkippedFile records a file that could not be counted and why.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// DirectoryReport summarizes token counts across a directory tree.
type DirectoryReport struct {
	Files       []FileTokens  `json:"files"`
	Skipped     []SkippedFile `json:"skipped,omitempty"`
	TotalFiles  int           `json:"total_files"`
	TotalTokens int           `json:"total_tokens"`
}

// CountFile counts tokens in a single file.
func CountFile(counter Counter, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return counter.Count(strings.ToValidUTF8(string(data), "�")), nil
}

// CountDirectory counts tokens in every file under dir matching any of
// filePatterns. Unreadable files are skipped and recorded in the report
// rather than aborting the run.
func CountDirectory(counter Counter, dir string, filePatterns []string) (*DirectoryReport, error) {
	if len(filePatterns) == 0 {
		filePatterns = []string{"*.md", "*.txt"}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	files, err := search.DiscoverFiles(dir, filePatterns)
	if err != nil {
		return nil, err
	}

	report := &DirectoryReport{}
	for _, path := range files {
		count, err := CountFile(counter, path)
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedFile{Path: path, Reason: err.Error()})
			continue
		}
		report.Files = append(report.Files, FileTokens{Path: path, Tokens: count})
		report.TotalTokens += count
	}
	report.TotalFiles = len(report.Files)

	return report, nil
}
