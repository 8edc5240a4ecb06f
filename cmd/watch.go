// Package cmd — watch command.
// Runs one full fix pass, then re-fixes files as they change on disk.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mdfix/core"
	"github.com/gaurav-prasanna/mdfix/core/engine"
	"github.com/gaurav-prasanna/mdfix/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Fix Markdown files continuously as they change",
	Long: `Watch performs a full fix pass over the directory tree, then keeps
running and re-fixes Markdown files as they are created or written.
Stop it with Ctrl-C.

Examples:
  mdfix watch ./docs
  mdfix watch ./docs --quiet`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := args[0]

	rules, err := buildRules(root)
	if err != nil {
		return err
	}
	eng := engine.New(rules)

	// Initial full pass before watching.
	rep, err := eng.Fix(root)
	if err != nil {
		return err
	}
	if err := printReport(cmd, rep, false); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes...\n", root)

	w := watch.New(eng, rules)
	w.Notify = func(fr core.FileReport) {
		if !flagQuiet {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Fixed: %s\n", fr.Path)
		}
	}
	w.OnError = func(path string, err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", path, err)
	}

	if err := w.Run(ctx, root); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
