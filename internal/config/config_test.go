package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "toolindex.yaml"))
	require.NoError(t, err)
	require.Equal(t, ".", cfg.Site.Dir)
	require.Equal(t, "index.html", cfg.Site.Entry)
	require.Equal(t, "tools.json", cfg.Output.Path)
	require.Equal(t, 4, cfg.Build.Workers)
	require.Equal(t, 15*time.Second, cfg.Describe.TimeoutDuration())
	require.Equal(t, 2*time.Second, cfg.Watch.DebounceDuration())
	require.Zero(t, cfg.Watch.IntervalDuration())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolindex.yaml")
	content := `site:
  dir: ./public
output:
  path: dist/tools.json
build:
  workers: 8
describe:
  deployment: gpt-4o-mini
  timeout: 30s
watch:
  interval: 10m
history:
  path: runs.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./public", cfg.Site.Dir)
	require.Equal(t, "index.html", cfg.Site.Entry)
	require.Equal(t, "dist/tools.json", cfg.Output.Path)
	require.Equal(t, 8, cfg.Build.Workers)
	require.Equal(t, "gpt-4o-mini", cfg.Describe.Deployment)
	require.Equal(t, 30*time.Second, cfg.Describe.TimeoutDuration())
	require.Equal(t, 10*time.Minute, cfg.Watch.IntervalDuration())
	require.Equal(t, "runs.db", cfg.History.Path)
}

func TestLoad_MalformedYAMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolindex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestParseDuration_InvalidFallsBack(t *testing.T) {
	require.Equal(t, 5*time.Second, parseDuration("bogus", 5*time.Second))
	require.Equal(t, 5*time.Second, parseDuration("", 5*time.Second))
	require.Equal(t, time.Minute, parseDuration("1m", 5*time.Second))
}
