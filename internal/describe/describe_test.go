package describe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/toolindex/internal/config"
)

// recordingGenerator counts invocations so tests can assert the generated
// tier was or was not consulted.
type recordingGenerator struct {
	enabled bool
	reply   string
	err     error
	calls   int
}

func (g *recordingGenerator) Enabled() bool { return g.enabled }

func (g *recordingGenerator) Describe(_ context.Context, _, _ string) (string, error) {
	g.calls++
	return g.reply, g.err
}

func TestDescribe_ExplicitTierSkipsHeadingsAndBlankLines(t *testing.T) {
	gen := &recordingGenerator{enabled: true, reply: "should not be used"}
	r := NewResolver(gen)

	desc, tier := r.Describe(context.Background(), Input{
		Slug: "demo",
		Body: "# Heading\n\nFirst real line.\nSecond line.",
	})
	require.Equal(t, "First real line.", desc)
	require.Equal(t, TierExplicit, tier)
	require.Zero(t, gen.calls)
}

func TestDescribe_GeneratedTierUsedWhenBodyEmpty(t *testing.T) {
	gen := &recordingGenerator{enabled: true, reply: "  A handy converter.  "}
	r := NewResolver(gen)

	desc, tier := r.Describe(context.Background(), Input{Slug: "demo", Content: "<html></html>"})
	require.Equal(t, "A handy converter.", desc)
	require.Equal(t, TierGenerated, tier)
	require.Equal(t, 1, gen.calls)
}

func TestDescribe_DisabledGeneratorNeverCalled(t *testing.T) {
	gen := &recordingGenerator{enabled: false}
	r := NewResolver(gen)

	desc, tier := r.Describe(context.Background(), Input{Slug: "demo"})
	require.Equal(t, DefaultDescription, desc)
	require.Equal(t, TierDefault, tier)
	require.Zero(t, gen.calls)
}

func TestDescribe_GeneratorFailureFallsThroughToDefault(t *testing.T) {
	gen := &recordingGenerator{enabled: true, err: errors.New("timeout")}
	r := NewResolver(gen)

	desc, tier := r.Describe(context.Background(), Input{Slug: "demo"})
	require.Equal(t, DefaultDescription, desc)
	require.Equal(t, TierDefault, tier)
	require.Equal(t, 1, gen.calls)
}

func TestDescribe_GeneratorEmptyReplyFallsThroughToDefault(t *testing.T) {
	gen := &recordingGenerator{enabled: true, reply: "   "}
	r := NewResolver(gen)

	desc, tier := r.Describe(context.Background(), Input{Slug: "demo"})
	require.Equal(t, DefaultDescription, desc)
	require.Equal(t, TierDefault, tier)
}

func TestResolveGenerator_DryRunDisablesEvenWithCredential(t *testing.T) {
	t.Setenv(EnvAPIKey, "key")
	t.Setenv(EnvEndpoint, "https://example.openai.azure.com")
	t.Setenv(EnvDeployment, "gpt")
	t.Setenv(EnvDryRun, "true")

	gen := ResolveGenerator(config.DescribeConfig{})
	require.False(t, gen.Enabled())
}

func TestResolveGenerator_MissingCredentialDisables(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvDryRun, "")

	gen := ResolveGenerator(config.DescribeConfig{})
	require.False(t, gen.Enabled())
}

func TestExcerpt_TruncatesLongContent(t *testing.T) {
	long := make([]rune, 3000)
	for i := range long {
		long[i] = 'ä'
	}

	out := excerpt(string(long))
	require.Equal(t, 2000, len([]rune(out)))
}

func TestExcerpt_ShortContentUnchanged(t *testing.T) {
	require.Equal(t, "short", excerpt("short"))
}
