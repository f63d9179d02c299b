// Package describe resolves a non-empty one-sentence description for each
// tool through an ordered fallback chain: explicit companion-doc text, a
// generated description from the configured text-generation service, and a
// fixed default. The chain never fails and never returns an empty string.
package describe

import (
	"context"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/toolindex/internal/foundation"
	"git.home.luguber.info/inful/toolindex/internal/logfields"
)

// DefaultDescription is the final-tier literal used when nothing better is
// available.
const DefaultDescription = "No description available."

// maxExcerptRunes bounds how much page content is sent to the generator.
const maxExcerptRunes = 2000

// Tier names, used for logging and metrics labels.
const (
	TierExplicit  = "explicit"
	TierGenerated = "generated"
	TierDefault   = "default"
)

// Input carries everything a tier may consult for one tool.
type Input struct {
	Slug    string
	Title   string
	Body    string // parsed companion-doc body, may be empty
	Content string // raw page content
}

// Tier is one stage of the fallback chain. A None result means the tier
// could not produce a description and the next tier runs.
type Tier struct {
	Name    string
	Resolve func(ctx context.Context, in Input) foundation.Option[string]
}

// Resolver evaluates tiers in order until one succeeds.
type Resolver struct {
	tiers []Tier
}

// NewResolver builds the standard three-tier chain around the given
// generator capability.
func NewResolver(gen Generator) *Resolver {
	return &Resolver{
		tiers: []Tier{
			{Name: TierExplicit, Resolve: resolveExplicit},
			{Name: TierGenerated, Resolve: generatedTier(gen)},
			{Name: TierDefault, Resolve: resolveDefault},
		},
	}
}

// Describe returns the first tier result plus the winning tier's name.
// The default tier guarantees a non-empty result.
func (r *Resolver) Describe(ctx context.Context, in Input) (string, string) {
	for _, tier := range r.tiers {
		if out := tier.Resolve(ctx, in); out.IsSome() {
			return out.Unwrap(), tier.Name
		}
		slog.Debug("Description tier yielded nothing", logfields.Slug(in.Slug), logfields.Tier(tier.Name))
	}
	// Unreachable: the default tier always resolves.
	return DefaultDescription, TierDefault
}

// resolveExplicit returns the first trimmed body line that is non-empty and
// not a heading.
func resolveExplicit(_ context.Context, in Input) foundation.Option[string] {
	for _, line := range strings.Split(in.Body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return foundation.Some(line)
	}
	return foundation.None[string]()
}

// generatedTier wraps the generator capability as a chain tier. A disabled
// generator short-circuits without any outbound call; any call failure is
// tier failure, not an error.
func generatedTier(gen Generator) func(context.Context, Input) foundation.Option[string] {
	return func(ctx context.Context, in Input) foundation.Option[string] {
		if !gen.Enabled() {
			return foundation.None[string]()
		}

		desc, err := gen.Describe(ctx, in.Title, excerpt(in.Content))
		if err != nil {
			slog.Warn("Description generation failed", logfields.Slug(in.Slug), logfields.Error(err))
			return foundation.None[string]()
		}

		desc = strings.TrimSpace(desc)
		if desc == "" {
			return foundation.None[string]()
		}
		slog.Debug("Generated description", logfields.Slug(in.Slug))
		return foundation.Some(desc)
	}
}

func resolveDefault(_ context.Context, _ Input) foundation.Option[string] {
	return foundation.Some(DefaultDescription)
}

// excerpt truncates content to the first maxExcerptRunes characters without
// splitting a multi-byte rune.
func excerpt(content string) string {
	if len(content) <= maxExcerptRunes {
		return content
	}
	runes := 0
	for i := range content {
		if runes == maxExcerptRunes {
			return content[:i]
		}
		runes++
	}
	return content
}
