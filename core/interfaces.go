// Package core defines the pipeline types and interfaces for mdfix.
// Each stage of the pipeline is a clean, testable interface.
package core

import "strings"

// Line is a single source line with its terminator kept separate so the
// original file can be reassembled byte for byte after editing.
type Line struct {
	Content    string
	Terminator string // "\n", "\r\n", or "" for an unterminated final line
}

// Raw returns the line exactly as it appeared in the file.
func (l Line) Raw() string {
	return l.Content + l.Terminator
}

// Blank reports whether the line is empty after stripping whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Content) == ""
}

// Insertion records one blank line inserted before a list item.
type Insertion struct {
	Line int    `json:"line"` // 1-based line number in the original file
	Text string `json:"text"` // the list-item line that triggered it
}

// FileReport holds the outcome for a single flagged file.
type FileReport struct {
	Path       string      `json:"path"`
	Insertions []Insertion `json:"insertions"`
	Fixed      bool        `json:"fixed"` // true when the file was rewritten
}

// RunReport is the complete outcome of one pass over a directory tree.
// Files holds only flagged files; clean files are scanned but not listed.
type RunReport struct {
	Root    string       `json:"root"`
	Scanned int          `json:"scanned"`
	Files   []FileReport `json:"files"`
}

// Modified returns the paths of files that were rewritten.
func (r RunReport) Modified() []string {
	var paths []string
	for _, f := range r.Files {
		if f.Fixed {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// Insertions returns the total number of insertions across all files.
func (r RunReport) Insertions() int {
	var n int
	for _, f := range r.Files {
		n += len(f.Insertions)
	}
	return n
}

// Tokenizer splits raw file content into lines and joins them back.
// Join(Split(content)) must reproduce content exactly.
type Tokenizer interface {
	Split(content string) []Line
	Join(lines []Line) string
}

// Normalizer transforms a line sequence, returning the new sequence and
// the insertions that were made.
type Normalizer interface {
	Normalize(lines []Line) ([]Line, []Insertion)
}

// Renderer converts a run report into a final output format.
type Renderer interface {
	Render(report RunReport) ([]byte, error)
}
