// Package cmd implements the CLI commands for mdfix using Cobra.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mdfix/config"
	"github.com/gaurav-prasanna/mdfix/core"
	"github.com/gaurav-prasanna/mdfix/core/report"
	"github.com/gaurav-prasanna/mdfix/walk"
)

// Flag variables shared by the fix, check, and watch commands.
var (
	flagExtensions []string
	flagJSON       bool
	flagQuiet      bool
	flagConfig     string
)

var rootCmd = &cobra.Command{
	Use:   "mdfix",
	Short: "mdfix — keep Markdown lists surrounded by blank lines",
	Long: `mdfix rewrites Markdown files so that every list item is preceded
by a blank line, satisfying lint rule MD032.

Usage:
  mdfix fix <dir> [flags]
  mdfix check <dir> [flags]
  mdfix watch <dir> [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&flagExtensions, "ext", nil, "Markdown filename suffixes (default .md)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Emit the run report as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress per-file output, keep the summary")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a TOML config file (default: <dir>/"+config.DefaultFilename+")")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildRules resolves the walk rules for a run: flags override the
// config file, the config file overrides defaults.
func buildRules(root string) (walk.Rules, error) {
	path := flagConfig
	if path == "" {
		path = filepath.Join(root, config.DefaultFilename)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return walk.Rules{}, err
	}

	rules := walk.Rules{Extensions: cfg.Extensions, Exclude: cfg.Exclude}
	if len(flagExtensions) > 0 {
		rules.Extensions = normalizeExts(flagExtensions)
	}
	return rules, nil
}

// normalizeExts prefixes bare extensions with a dot, so "--ext md" and
// "--ext .md" behave the same.
func normalizeExts(exts []string) []string {
	out := make([]string, len(exts))
	for i, ext := range exts {
		if len(ext) > 0 && ext[0] != '.' {
			ext = "." + ext
		}
		out[i] = ext
	}
	return out
}

// printReport renders a run report to the command's stdout in the
// selected format.
func printReport(cmd *cobra.Command, rep core.RunReport, verbose bool) error {
	var renderer core.Renderer
	if flagJSON {
		renderer = report.NewJSONRenderer()
	} else {
		renderer = report.NewTextRenderer(verbose, flagQuiet)
	}

	data, err := renderer.Render(rep)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
