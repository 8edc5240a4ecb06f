// Package cmd — check command.
// Dry-run variant of fix: same scan, no writes, lint exit semantics.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mdfix/core/engine"
)

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Report list items missing a preceding blank line, without rewriting",
	Long: `Check scans a directory tree for Markdown files whose list items are
not preceded by a blank line. Nothing is written. The exit code is
non-zero when any violation exists, so check can gate CI.

Examples:
  mdfix check ./docs
  mdfix check ./docs --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := args[0]

	rules, err := buildRules(root)
	if err != nil {
		return err
	}

	rep, err := engine.New(rules).Check(root)
	if err != nil {
		return err
	}
	if err := printReport(cmd, rep, true); err != nil {
		return err
	}

	if len(rep.Files) > 0 {
		return fmt.Errorf("%d file(s) need blank lines around lists", len(rep.Files))
	}
	return nil
}
