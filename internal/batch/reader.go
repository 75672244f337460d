package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one line of a batch file
type Entry struct {
	Text string
	// Expected is an optional reference transcription to compare against
	Expected string
	// Line is the 1-based line number in the batch file
	Line int
}

// ReadBatchFile reads entries from a file
// Supports formats:
// - Text only: "ма́ма"
// - With expected IPA: "ма́ма = ˈmamɐ"
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(string(content))
}

// Parse reads entries from batch file content
func Parse(content string) ([]Entry, error) {
	var entries []Entry

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{Text: line, Line: i + 1}
		if text, expected, ok := strings.Cut(line, "="); ok {
			entry.Text = strings.TrimSpace(text)
			entry.Expected = strings.TrimSpace(expected)
			if entry.Text == "" {
				return nil, fmt.Errorf("line %d: missing text before '='", i+1)
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
