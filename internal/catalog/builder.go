package catalog

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/toolindex/internal/describe"
	"git.home.luguber.info/inful/toolindex/internal/frontmatter"
	"git.home.luguber.info/inful/toolindex/internal/logfields"
	"git.home.luguber.info/inful/toolindex/internal/metrics"
)

// Builder assembles the full catalog from a site directory. Every build is
// from scratch; nothing persists between runs.
type Builder struct {
	dir      string
	entry    string
	workers  int
	resolver *describe.Resolver
	rec      metrics.Recorder
}

// NewBuilder wires the pipeline components together.
func NewBuilder(dir, entry string, workers int, resolver *describe.Resolver, rec metrics.Recorder) *Builder {
	if workers < 1 {
		workers = 1
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Builder{
		dir:      dir,
		entry:    entry,
		workers:  workers,
		resolver: resolver,
		rec:      rec,
	}
}

type builtTool struct {
	tool Tool
	tier string
}

// Build discovers all tool pages and produces one record per page, in
// discovery order. The only error it can return is the discovery failure;
// every per-tool problem degrades through the documented fallbacks.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	started := time.Now()
	runID := uuid.NewString()

	artifacts, err := Discover(b.dir, b.entry)
	if err != nil {
		b.rec.IncBuildOutcome("failed")
		return nil, err
	}
	slog.Info("Discovered tool pages", logfields.RunID(runID), logfields.Count(len(artifacts)))

	// Per-tool work may call out to the generator, so it runs through a
	// bounded pool with index-addressed slots preserving discovery order.
	results := make([]builtTool, len(artifacts))
	sem := make(chan struct{}, b.workers)
	var wg sync.WaitGroup
	for i, artifact := range artifacts {
		wg.Add(1)
		go func(i int, artifact Artifact) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = b.buildOne(ctx, artifact)
		}(i, artifact)
	}
	wg.Wait()

	tools := make([]Tool, len(results))
	tierCounts := make(map[string]int)
	for i, r := range results {
		tools[i] = r.tool
		tierCounts[r.tier]++
	}

	finished := time.Now()
	b.rec.ObserveBuildDuration(finished.Sub(started))
	b.rec.IncBuildOutcome("success")
	slog.Info("Catalog assembled",
		logfields.RunID(runID),
		logfields.Count(len(tools)),
		logfields.DurationMS(float64(finished.Sub(started).Milliseconds())))

	return &Result{
		RunID:      runID,
		Tools:      tools,
		TierCounts: tierCounts,
		Started:    started,
		Finished:   finished,
	}, nil
}

func (b *Builder) buildOne(ctx context.Context, artifact Artifact) builtTool {
	raw, err := os.ReadFile(artifact.Path)
	if err != nil {
		// The page existed at discovery time; fall through with empty
		// content rather than failing the build.
		slog.Warn("Failed to read tool page", logfields.Slug(artifact.Slug), logfields.Error(err))
		raw = nil
	}
	content := string(raw)

	title := ResolveTitle(content, artifact.Slug)
	parsed := frontmatter.ParseFile(artifact.DocsPath)

	desc, tier := b.resolver.Describe(ctx, describe.Input{
		Slug:    artifact.Slug,
		Title:   title,
		Body:    parsed.Body,
		Content: content,
	})
	b.rec.IncDescriptionTier(tier)
	slog.Debug("Resolved tool metadata", logfields.Slug(artifact.Slug), logfields.Tier(tier))

	return builtTool{
		tool: Tool{
			Slug:        artifact.Slug,
			Title:       title,
			Description: desc,
			URL:         artifact.Name,
			Category:    parsed.Meta.Category.Ptr(),
			Tags:        parsed.Meta.Tags,
		},
		tier: tier,
	}
}
