// Package engine runs the fix pipeline over a directory tree.
// It wires discovery, tokenizing, normalizing, and the conditional
// rewrite into one explicit entry point with no hidden state:
// walk → read → split → normalize → write.
package engine

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/mdfix/core"
	"github.com/gaurav-prasanna/mdfix/core/blankline"
	"github.com/gaurav-prasanna/mdfix/core/lines"
	"github.com/gaurav-prasanna/mdfix/core/output"
	"github.com/gaurav-prasanna/mdfix/walk"
)

// Engine processes Markdown files strictly sequentially. The first I/O
// fault aborts the run; there are no retries and no local recovery.
type Engine struct {
	tokenizer  core.Tokenizer
	normalizer core.Normalizer
	writer     *output.Writer
	rules      walk.Rules
}

// New creates an Engine with the default pipeline stages.
func New(rules walk.Rules) *Engine {
	return &Engine{
		tokenizer:  lines.New(),
		normalizer: blankline.New(),
		writer:     output.New(),
		rules:      rules,
	}
}

// Fix scans root and rewrites offending files in place.
func (e *Engine) Fix(root string) (core.RunReport, error) {
	return e.run(root, true)
}

// Check scans root without writing anything.
func (e *Engine) Check(root string) (core.RunReport, error) {
	return e.run(root, false)
}

func (e *Engine) run(root string, write bool) (core.RunReport, error) {
	report := core.RunReport{Root: root}

	paths, err := walk.Discover(root, e.rules)
	if err != nil {
		return report, err
	}
	report.Scanned = len(paths)

	for _, path := range paths {
		fr, err := e.processFile(path, write)
		if err != nil {
			return report, err
		}
		// Clean files are never written and never reported.
		if len(fr.Insertions) == 0 {
			continue
		}
		report.Files = append(report.Files, fr)
	}
	return report, nil
}

// FixFile runs the pipeline over a single file, rewriting it in place
// when insertions occurred. Used by watch mode.
func (e *Engine) FixFile(path string) (core.FileReport, error) {
	return e.processFile(path, true)
}

// processFile reads, normalizes, and conditionally rewrites one file.
func (e *Engine) processFile(path string, write bool) (core.FileReport, error) {
	fr := core.FileReport{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return fr, fmt.Errorf("reading %s: %w", path, err)
	}

	ls := e.tokenizer.Split(string(data))
	fixed, insertions := e.normalizer.Normalize(ls)
	fr.Insertions = insertions

	if len(insertions) == 0 || !write {
		return fr, nil
	}

	if err := e.writer.Rewrite(path, e.tokenizer.Join(fixed)); err != nil {
		return fr, err
	}
	fr.Fixed = true
	return fr, nil
}
