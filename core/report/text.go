// Package report provides renderers for run reports.
// This file implements the text renderer used for terminal output.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gaurav-prasanna/mdfix/core"
)

var (
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// TextRenderer produces the human-readable terminal report.
type TextRenderer struct {
	Verbose bool // include per-insertion lines (check mode)
	Quiet   bool // suppress per-file lines, keep the summary
}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer(verbose, quiet bool) *TextRenderer {
	return &TextRenderer{Verbose: verbose, Quiet: quiet}
}

// Render formats the run report as terminal text.
func (r *TextRenderer) Render(report core.RunReport) ([]byte, error) {
	var b strings.Builder

	if !r.Quiet {
		for _, f := range report.Files {
			if f.Fixed {
				fmt.Fprintf(&b, "✓ Fixed: %s\n", pathStyle.Render(f.Path))
			} else {
				fmt.Fprintf(&b, "✗ %s: %d missing blank line(s)\n",
					pathStyle.Render(f.Path), len(f.Insertions))
			}
			if r.Verbose {
				for _, ins := range f.Insertions {
					fmt.Fprintf(&b, "  %d: %s\n", ins.Line, strings.TrimSpace(ins.Text))
				}
			}
		}
	}

	fmt.Fprintln(&b, summaryStyle.Render(fmt.Sprintf(
		"%d file(s) scanned, %d file(s) flagged, %d insertion(s)",
		report.Scanned, len(report.Files), report.Insertions())))

	return []byte(b.String()), nil
}
