package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// CreateBatchFile writes dir/batch.txt with one entry per line and returns
// its path
func CreateBatchFile(t *testing.T, dir string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, "batch.txt")
	WriteFile(t, path, strings.Join(lines, "\n")+"\n")
	return path
}

// ReadFile returns the content of path and fails the test if it is unreadable
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// AssertFileExists fails the test if path does not exist
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file to exist: %s (%v)", path, err)
	}
}

// AssertFileContent compares the whole file with want
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()

	if got := ReadFile(t, path); got != want {
		t.Errorf("Content of %s\nwant: %q\ngot:  %q", path, want, got)
	}
}

// AssertFileContains checks that the file contains substring
func AssertFileContains(t *testing.T, path, substring string) {
	t.Helper()

	if got := ReadFile(t, path); !strings.Contains(got, substring) {
		t.Errorf("File %s does not contain %q:\n%s", path, substring, got)
	}
}
