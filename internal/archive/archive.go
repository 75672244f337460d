package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveExports moves the exports directory to archive/<name>-<timestamp>
// next to it and returns the new path
func ArchiveExports(exportsDir string) (string, error) {
	info, err := os.Stat(exportsDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("exports directory does not exist: %s", exportsDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat exports directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", exportsDir)
	}

	exportsDir = filepath.Clean(exportsDir)
	archiveDir := filepath.Join(filepath.Dir(exportsDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	archivePath := uniquePath(archiveDir, filepath.Base(exportsDir), time.Now())
	if err := os.Rename(exportsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive exports directory: %w", err)
	}

	return archivePath, nil
}

// uniquePath returns archiveDir/<name>-<timestamp>, adding a counter when
// an archive from the same second exists
func uniquePath(archiveDir, name string, now time.Time) string {
	base := fmt.Sprintf("%s-%s", name, now.Format("20060102-150405"))
	path := filepath.Join(archiveDir, base)

	for i := 2; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(archiveDir, fmt.Sprintf("%s-%d", base, i))
	}
}
