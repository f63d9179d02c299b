package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/toolindex/internal/catalog"
	"git.home.luguber.info/inful/toolindex/internal/config"
	"git.home.luguber.info/inful/toolindex/internal/describe"
	"git.home.luguber.info/inful/toolindex/internal/history"
	"git.home.luguber.info/inful/toolindex/internal/logfields"
	"git.home.luguber.info/inful/toolindex/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Site   string `short:"s" help:"Site directory containing tool pages (overrides config)"`
	Output string `short:"o" help:"Catalog output path (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Site != "" {
		cfg.Site.Dir = b.Site
	}
	if b.Output != "" {
		cfg.Output.Path = b.Output
	}

	res, err := runBuild(context.Background(), cfg, metrics.NoopRecorder{})
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d tool(s) to %s\n", len(res.Tools), cfg.Output.Path)
	return nil
}

// runBuild executes one full pipeline run and writes the catalog. Shared
// with watch mode so every rebuild goes through the same path.
func runBuild(ctx context.Context, cfg *config.Config, rec metrics.Recorder) (*catalog.Result, error) {
	gen := describe.Instrumented(describe.ResolveGenerator(cfg.Describe), rec)
	resolver := describe.NewResolver(gen)
	builder := catalog.NewBuilder(cfg.Site.Dir, cfg.Site.Entry, cfg.Build.Workers, resolver, rec)

	res, err := builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := catalog.WriteCatalog(cfg.Output.Path, res.Tools); err != nil {
		return nil, err
	}

	recordRun(ctx, cfg, res)
	return res, nil
}

// recordRun appends the run to the history store when one is configured.
// History is observability, never a build failure.
func recordRun(ctx context.Context, cfg *config.Config, res *catalog.Result) {
	if cfg.History.Path == "" {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Warn("History store unavailable", logfields.Error(err))
		return
	}
	defer store.Close()

	err = store.Record(ctx, history.Run{
		RunID:     res.RunID,
		Started:   res.Started,
		Finished:  res.Finished,
		Tools:     len(res.Tools),
		Explicit:  res.TierCounts[describe.TierExplicit],
		Generated: res.TierCounts[describe.TierGenerated],
		Fallback:  res.TierCounts[describe.TierDefault],
		Output:    cfg.Output.Path,
	})
	if err != nil {
		slog.Warn("Failed to record build run", logfields.RunID(res.RunID), logfields.Error(err))
	}
}
