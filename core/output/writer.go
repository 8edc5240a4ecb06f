// Package output handles the in-place rewrite of fixed files.
// The write is destructive and not transactional; a crash mid-write can
// truncate the file.
package output

import (
	"fmt"
	"os"
)

// Writer rewrites files on disk.
type Writer struct{}

// New creates a Writer.
func New() *Writer {
	return &Writer{}
}

// Rewrite overwrites path with content, keeping the file's original
// permission bits.
func (w *Writer) Rewrite(path string, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
