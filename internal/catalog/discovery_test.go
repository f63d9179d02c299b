package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestDiscover_SortedAndEntryExcluded(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"zeta.html":    "<title>Z</title>",
		"alpha.html":   "<title>A</title>",
		"index.html":   "<title>Index</title>",
		"notes.txt":    "ignored",
		"beta.docs.md": "ignored",
	})

	artifacts, err := Discover(dir, "index.html")
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	require.Equal(t, "alpha", artifacts[0].Slug)
	require.Equal(t, "zeta", artifacts[1].Slug)
	require.Equal(t, "alpha.html", artifacts[0].Name)
	require.Equal(t, filepath.Join(dir, "alpha.docs.md"), artifacts[0].DocsPath)
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	artifacts, err := Discover(t.TempDir(), "index.html")
	require.NoError(t, err)
	require.Empty(t, artifacts)
}

func TestDiscover_MissingDirectoryIsFatal(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), "index.html")
	require.Error(t, err)
}
