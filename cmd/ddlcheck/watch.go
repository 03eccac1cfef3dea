package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch DIR...",
		Short: "Re-check DDL files as they change",
		Long:  `Watch directories recursively and check each DDL file when it is written.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := NewWatcher(a.cfg.Watch.Extensions, a.cfg.Watch.Debounce, a.logger, func(path string) {
				if _, err := a.checkFile(path, false, formatText); err != nil {
					fmt.Fprintf(a.stderr, "error: %v\n", err)
				}
			})
			if err != nil {
				return err
			}
			defer w.Close()

			for _, dir := range args {
				if err := w.AddRecursive(dir); err != nil {
					return fmt.Errorf("failed to watch %s: %w", dir, err)
				}
				a.logger.Info("watching", slog.String("dir", dir))
			}

			w.Run(cmd.Context())
			return nil
		},
	}
}

// Watcher monitors directories and runs a check on changed DDL files
type Watcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
	debounce   time.Duration
	check      func(path string)
	logger     *slog.Logger

	// One timer per path; a change restarts its timer
	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewWatcher creates a watcher that calls check for files with one of the
// extensions once they have been quiet for the debounce period.
func NewWatcher(extensions []string, debounce time.Duration, logger *slog.Logger, check func(path string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Watcher{
		watcher:    fsWatcher,
		extensions: extensions,
		debounce:   debounce,
		check:      check,
		logger:     logger.With(slog.String("component", "watch")),
		pending:    make(map[string]*time.Timer),
	}, nil
}

// AddRecursive adds a directory and its subdirectories to the watch list
func (w *Watcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// Run processes file system events until ctx is done
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.AddRecursive(event.Name); err != nil {
				w.logger.Error("failed to watch new directory", slog.String("dir", event.Name), slog.Any("error", err))
			}
			return
		}
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !w.matches(event.Name) {
		return
	}
	w.schedule(event.Name)
}

func (w *Watcher) matches(path string) bool {
	return slices.Contains(w.extensions, strings.ToLower(filepath.Ext(path)))
}

// schedule runs check for path after the debounce period, restarting the
// period if the path changes again.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if prev, ok := w.pending[path]; ok {
		prev.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.pending[path] == t {
			delete(w.pending, path)
		}
		w.mu.Unlock()

		w.logger.Debug("file changed", slog.String("file", path))
		w.check(path)
	})
	w.pending[path] = t
}

// Close stops the watcher and any pending checks
func (w *Watcher) Close() error {
	w.mu.Lock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
