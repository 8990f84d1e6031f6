package text

import (
	"sort"
	"strings"
)

// MergeWindows coalesces overlapping windows into a minimal covering set
// and returns the merged text. Windows are sorted by start line; a window
// whose start is at or before the running window's end extends it, and its
// text is appended unless it is already literally contained in the
// accumulated text. Non-overlapping windows become separate blank-line
// separated segments.
//
// The containment check is a cheap textual dedup, not a line-range diff:
// pathological inputs can retain redundant text when containment fails to
// detect a true overlap.
func MergeWindows(windows []Window) string {
	if len(windows) == 0 {
		return ""
	}

	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartLine != sorted[j].StartLine {
			return sorted[i].StartLine < sorted[j].StartLine
		}
		if sorted[i].EndLine != sorted[j].EndLine {
			return sorted[i].EndLine < sorted[j].EndLine
		}
		return sorted[i].Text < sorted[j].Text
	})

	merged := []Window{sorted[0]}
	for _, current := range sorted[1:] {
		last := &merged[len(merged)-1]

		if current.StartLine <= last.EndLine {
			last.EndLine = max(last.EndLine, current.EndLine)
			if !strings.Contains(last.Text, current.Text) {
				last.Text = last.Text + "\n" + current.Text
			}
		} else {
			merged = append(merged, current)
		}
	}

	texts := make([]string, len(merged))
	for i, w := range merged {
		texts[i] = w.Text
	}
	return strings.Join(texts, "\n\n")
}

// ConcatWindows joins window texts with blank-line separators without any
// overlap merging. Used when merge_overlapping_windows is disabled.
func ConcatWindows(windows []Window) string {
	texts := make([]string, len(windows))
	for i, w := range windows {
		texts[i] = w.Text
	}
	return strings.Join(texts, "\n\n")
}
