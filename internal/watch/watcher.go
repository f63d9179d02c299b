// Package watch keeps the catalog current: it rebuilds on artifact changes
// (debounced), optionally on a fixed schedule, and announces each rebuild.
// Every rebuild is a full from-scratch pipeline run.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/toolindex/internal/catalog"
	"git.home.luguber.info/inful/toolindex/internal/logfields"
)

// BuildFunc runs one full catalog build and returns its result.
type BuildFunc func(ctx context.Context) (*catalog.Result, error)

// Options configures the watch loop.
type Options struct {
	Dir      string
	Debounce time.Duration
	// Interval schedules rebuilds independent of file events; zero disables.
	Interval time.Duration
	Notifier *Notifier
	Output   string
}

// Run blocks, rebuilding the catalog until ctx is canceled. An initial
// build always runs before watching starts.
func Run(ctx context.Context, opts Options, build BuildFunc) error {
	if opts.Debounce <= 0 {
		opts.Debounce = 2 * time.Second
	}

	runBuild := func() {
		res, err := build(ctx)
		if err != nil {
			slog.Error("Catalog rebuild failed", logfields.Error(err))
			return
		}
		if err := opts.Notifier.CatalogBuilt(res, opts.Output); err != nil {
			slog.Warn("Catalog announcement failed", logfields.Error(err))
		}
	}
	runBuild()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	absDir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("resolve site directory: %w", err)
	}
	if err := watcher.Add(absDir); err != nil {
		return fmt.Errorf("watch site directory %s: %w", absDir, err)
	}
	slog.Info("Watching site directory", logfields.Path(absDir))

	trigger := make(chan struct{}, 1)
	if opts.Interval > 0 {
		scheduler, err := newScheduler(opts.Interval, trigger)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer func() { _ = scheduler.Shutdown() }()
	}

	var debounce *time.Timer
	debounceC := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("Site change detected", logfields.Path(event.Name))
			if debounce == nil {
				debounce = time.AfterFunc(opts.Debounce, func() {
					select {
					case debounceC <- struct{}{}:
					default:
					}
				})
			} else {
				debounce.Reset(opts.Debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", logfields.Error(err))

		case <-debounceC:
			debounce = nil
			runBuild()

		case <-trigger:
			slog.Debug("Scheduled rebuild")
			runBuild()
		}
	}
}

// relevant filters events down to tool pages and companion docs.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".docs.md")
}
