package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/toolindex/internal/describe"
	"git.home.luguber.info/inful/toolindex/internal/metrics"
)

func newTestBuilder(dir string, workers int) *Builder {
	resolver := describe.NewResolver(describe.Disabled("test"))
	return NewBuilder(dir, "index.html", workers, resolver, metrics.NoopRecorder{})
}

func TestBuild_OneRecordPerArtifactWithNonEmptyFields(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"json-formatter.html":    "<title>JSON Formatter</title>",
		"json-formatter.docs.md": "---\ncategory: dev\ntags: [json, web]\n---\nFormats JSON documents.",
		"color-picker.html":      "<html><body></body></html>",
		"index.html":             "<title>Home</title>",
	})

	res, err := newTestBuilder(dir, 2).Build(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Tools, 2)

	seen := map[string]bool{}
	for _, tool := range res.Tools {
		require.NotEmpty(t, tool.Title)
		require.NotEmpty(t, tool.Description)
		require.False(t, seen[tool.Slug], "slug %s duplicated", tool.Slug)
		seen[tool.Slug] = true
	}

	picker := res.Tools[0]
	require.Equal(t, "color-picker", picker.Slug)
	require.Equal(t, "Color Picker", picker.Title)
	require.Equal(t, describe.DefaultDescription, picker.Description)
	require.Equal(t, "color-picker.html", picker.URL)
	require.Nil(t, picker.Category)
	require.Empty(t, picker.Tags)
	require.NotNil(t, picker.Tags)

	formatter := res.Tools[1]
	require.Equal(t, "json-formatter", formatter.Slug)
	require.Equal(t, "JSON Formatter", formatter.Title)
	require.Equal(t, "Formats JSON documents.", formatter.Description)
	require.NotNil(t, formatter.Category)
	require.Equal(t, "dev", *formatter.Category)
	require.Equal(t, []string{"json", "web"}, formatter.Tags)
}

func TestBuild_OrderPreservedUnderConcurrency(t *testing.T) {
	files := map[string]string{}
	names := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel"}
	for _, n := range names {
		files[n+".html"] = "<title>" + n + "</title>"
	}
	dir := writeSite(t, files)

	res, err := newTestBuilder(dir, 8).Build(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Tools, len(names))
	for i, n := range names {
		require.Equal(t, n, res.Tools[i].Slug)
	}
}

func TestBuild_DeterministicAcrossRuns(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"unit-converter.html":    "<title>Unit Converter für ünits</title>",
		"unit-converter.docs.md": "Converts between münits.",
		"b-tool.html":            "<title>B</title>",
	})
	b := newTestBuilder(dir, 4)

	first, err := b.Build(context.Background())
	require.NoError(t, err)
	second, err := b.Build(context.Background())
	require.NoError(t, err)

	firstDoc, err := MarshalCatalog(first.Tools)
	require.NoError(t, err)
	secondDoc, err := MarshalCatalog(second.Tools)
	require.NoError(t, err)
	require.Equal(t, firstDoc, secondDoc)
}

func TestBuild_TierCountsAccumulate(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"a.html":    "<title>A</title>",
		"a.docs.md": "Described explicitly.",
		"b.html":    "<title>B</title>",
	})

	res, err := newTestBuilder(dir, 1).Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.TierCounts[describe.TierExplicit])
	require.Equal(t, 1, res.TierCounts[describe.TierDefault])
}

func TestBuild_MissingDirectoryFails(t *testing.T) {
	_, err := newTestBuilder("/nonexistent/site/dir", 1).Build(context.Background())
	require.Error(t, err)
}
