// Package walk provides Markdown file discovery for the fix pipeline.
// It walks the root directory recursively, keeping discovery logic
// separate from the rewrite pipeline.
package walk

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Discover returns every file under root matching the rules, in lexical
// walk order. A missing or unreadable root surfaces as the walk error;
// there is no domain-level validation of the path.
func Discover(root string, rules Rules) ([]string, error) {
	queue := NewQueue()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && rules.SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if rules.Match(d.Name()) {
			queue.Add(path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return queue.All(), nil
}
