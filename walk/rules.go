// Package walk — file selection rules.
// Decides which directories are descended into and which files are
// handed to the pipeline.
package walk

import "strings"

// skipDirs are directories never descended into. These hold VCS
// metadata or third-party trees whose Markdown is not ours to rewrite.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
}

// Rules filters the walk.
type Rules struct {
	Extensions []string // case-sensitive filename suffixes, e.g. ".md"
	Exclude    []string // extra directory names to skip
}

// DefaultRules selects .md files and skips nothing beyond skipDirs.
func DefaultRules() Rules {
	return Rules{Extensions: []string{".md"}}
}

// SkipDir reports whether a directory entry should be skipped entirely.
func (r Rules) SkipDir(name string) bool {
	if skipDirs[name] {
		return true
	}
	for _, ex := range r.Exclude {
		if name == ex {
			return true
		}
	}
	return false
}

// Match reports whether a filename is a Markdown file. The suffix match
// is exact and case-sensitive: "README.MD" does not match ".md".
func (r Rules) Match(name string) bool {
	for _, ext := range r.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
