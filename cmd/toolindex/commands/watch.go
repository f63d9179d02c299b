package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/toolindex/internal/catalog"
	"git.home.luguber.info/inful/toolindex/internal/config"
	"git.home.luguber.info/inful/toolindex/internal/logfields"
	"git.home.luguber.info/inful/toolindex/internal/metrics"
	"git.home.luguber.info/inful/toolindex/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Site        string `short:"s" help:"Site directory containing tool pages (overrides config)"`
	MetricsAddr string `name:"metrics-addr" help:"Prometheus listen address (overrides config)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if w.Site != "" {
		cfg.Site.Dir = w.Site
	}
	if w.MetricsAddr != "" {
		cfg.Metrics.Addr = w.MetricsAddr
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Addr != "" {
		registry := prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(registry)
		go func() {
			if err := metrics.Serve(cfg.Metrics.Addr, registry); err != nil {
				slog.Error("Metrics listener failed", logfields.Error(err))
			}
		}()
		slog.Info("Metrics listener started", slog.String("addr", cfg.Metrics.Addr))
	}

	var notifier *watch.Notifier
	if cfg.Watch.NATSURL != "" {
		notifier, err = watch.NewNotifier(cfg.Watch.NATSURL, cfg.Watch.Subject)
		if err != nil {
			return err
		}
		defer notifier.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = watch.Run(ctx, watch.Options{
		Dir:      cfg.Site.Dir,
		Debounce: cfg.Watch.DebounceDuration(),
		Interval: cfg.Watch.IntervalDuration(),
		Notifier: notifier,
		Output:   cfg.Output.Path,
	}, func(ctx context.Context) (*catalog.Result, error) {
		return runBuild(ctx, cfg, rec)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
