// Package cmd — fix command.
// This is the main command that orchestrates the pipeline:
// walk → read → split → normalize → write.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mdfix/core/engine"
)

var fixCmd = &cobra.Command{
	Use:   "fix <dir>",
	Short: "Rewrite Markdown files so lists are preceded by blank lines",
	Long: `Fix walks a directory tree, finds Markdown files, and inserts a blank
line before every list item that directly follows a non-blank line.
Files are rewritten in place; files that already conform are never
written.

Examples:
  mdfix fix ./docs
  mdfix fix ./docs --ext md --ext markdown
  mdfix fix ./docs --json`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	root := args[0]

	rules, err := buildRules(root)
	if err != nil {
		return err
	}

	rep, err := engine.New(rules).Fix(root)
	if err != nil {
		return err
	}
	return printReport(cmd, rep, false)
}
