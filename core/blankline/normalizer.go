// Package blankline implements the Normalizer interface.
// It enforces the insertion half of lint rule MD032: every line that
// opens a list item must be preceded by a blank line.
package blankline

import (
	"regexp"

	"github.com/gaurav-prasanna/mdfix/core"
)

// List-item patterns. Matching runs on the raw line so the terminator
// counts as the trailing whitespace after a bare marker: "-\n" is a
// list item, a lone "-" at EOF without a newline is not.
var (
	bulletRegex  = regexp.MustCompile(`^\s*[-*+]\s`)
	orderedRegex = regexp.MustCompile(`^\s*\d+\.\s`)
)

// Normalizer inserts blank lines before list items.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// IsListItem reports whether the line opens a bulleted or numbered list
// item. Indentation before the marker does not exempt the line.
func IsListItem(l core.Line) bool {
	raw := l.Raw()
	return bulletRegex.MatchString(raw) || orderedRegex.MatchString(raw)
}

// Normalize inserts a blank line before every list-item line whose
// predecessor in the original sequence is non-blank. The first line
// never triggers. The predecessor check is blank/non-blank only, not
// list/non-list, so adjacent list items trigger too.
//
// Inserted lines are a single "\n" regardless of the file's dominant
// terminator; unmodified lines keep their original terminators.
func (n *Normalizer) Normalize(in []core.Line) ([]core.Line, []core.Insertion) {
	out := make([]core.Line, 0, len(in))
	var insertions []core.Insertion

	for i, l := range in {
		if i > 0 && IsListItem(l) && !in[i-1].Blank() {
			out = append(out, core.Line{Terminator: "\n"})
			insertions = append(insertions, core.Insertion{Line: i + 1, Text: l.Content})
		}
		out = append(out, l)
	}
	return out, insertions
}
