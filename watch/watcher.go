// Package watch re-runs the fix pipeline when Markdown files change.
// It watches every directory under the root via fsnotify, picking up
// new subdirectories as they appear. Event bursts for the same file are
// coalesced through a short debounce window and a dedup queue.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gaurav-prasanna/mdfix/core"
	"github.com/gaurav-prasanna/mdfix/core/engine"
	"github.com/gaurav-prasanna/mdfix/walk"
)

// debounce is how long to wait after the last event before fixing the
// pending files. Editors often emit several writes per save.
const debounce = 250 * time.Millisecond

// Watcher drives the engine from filesystem events.
type Watcher struct {
	engine *engine.Engine
	rules  walk.Rules

	// Notify is called for every file the engine rewrote.
	Notify func(core.FileReport)
	// OnError is called for per-file failures; the watcher keeps going.
	OnError func(path string, err error)
}

// New creates a Watcher around an engine.
func New(eng *engine.Engine, rules walk.Rules) *Watcher {
	return &Watcher{
		engine:  eng,
		rules:   rules,
		Notify:  func(core.FileReport) {},
		OnError: func(string, error) {},
	}
}

// Run watches root until ctx is cancelled. Watcher-level failures
// (inotify setup, event channel closed) return an error; per-file
// failures go through OnError so a transient fault on one file does not
// stop the watch.
func (w *Watcher) Run(ctx context.Context, root string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addDirs(fw, root); err != nil {
		return err
	}

	pending := walk.NewQueue()
	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if event.Op&fsnotify.Chmod != 0 {
				continue
			}
			w.handleEvent(fw, event, pending)
			if pending.Len() > 0 {
				flush = time.After(debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watching %s: %w", root, err)

		case <-flush:
			w.fixPending(pending)
			pending = walk.NewQueue()
			flush = nil
		}
	}
}

// handleEvent queues changed Markdown files and registers new
// directories as they are created.
func (w *Watcher) handleEvent(fw *fsnotify.Watcher, event fsnotify.Event, pending *walk.Queue) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return // removed again before we got here
	}

	if info.IsDir() {
		if event.Op&fsnotify.Create == 0 || w.rules.SkipDir(filepath.Base(event.Name)) {
			return
		}
		// Watch the new tree and queue any Markdown already inside it.
		if err := w.addDirs(fw, event.Name); err != nil {
			w.OnError(event.Name, err)
			return
		}
		paths, err := walk.Discover(event.Name, w.rules)
		if err != nil {
			w.OnError(event.Name, err)
			return
		}
		for _, p := range paths {
			pending.Add(p)
		}
		return
	}

	if w.rules.Match(filepath.Base(event.Name)) {
		pending.Add(event.Name)
	}
}

// fixPending runs the engine over every queued file.
func (w *Watcher) fixPending(pending *walk.Queue) {
	for pending.HasNext() {
		path := pending.Next()
		fr, err := w.engine.FixFile(path)
		if err != nil {
			w.OnError(path, err)
			continue
		}
		if fr.Fixed {
			w.Notify(fr)
		}
	}
}

// addDirs registers root and every non-skipped directory below it.
func (w *Watcher) addDirs(fw *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.rules.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}
	return nil
}
