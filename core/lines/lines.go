// Package lines implements the Tokenizer interface.
// It splits raw file content into terminator-preserving lines so the
// pipeline can edit a file and write it back without disturbing the
// bytes of untouched lines.
package lines

import (
	"strings"

	"github.com/gaurav-prasanna/mdfix/core"
)

// Splitter is the line tokenizer for the pipeline.
type Splitter struct{}

// New creates a Splitter.
func New() *Splitter {
	return &Splitter{}
}

// Split cuts content into lines. Each "\n" or "\r\n" ends a line and
// stays attached to it. Content after the last terminator becomes a
// final unterminated line.
func (s *Splitter) Split(content string) []core.Line {
	var out []core.Line
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		end := i
		term := "\n"
		if i > start && content[i-1] == '\r' {
			end = i - 1
			term = "\r\n"
		}
		out = append(out, core.Line{Content: content[start:end], Terminator: term})
		start = i + 1
	}
	if start < len(content) {
		out = append(out, core.Line{Content: content[start:]})
	}
	return out
}

// Join reassembles lines into file content.
func (s *Splitter) Join(ls []core.Line) string {
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(l.Content)
		b.WriteString(l.Terminator)
	}
	return b.String()
}
