package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Output   OutputConfig   `yaml:"output"`
	Build    BuildConfig    `yaml:"build"`
	Describe DescribeConfig `yaml:"describe"`
	Watch    WatchConfig    `yaml:"watch"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	History  HistoryConfig  `yaml:"history"`
}

// SiteConfig locates the directory holding the generated tool pages.
type SiteConfig struct {
	Dir string `yaml:"dir"`
	// Entry is the index page excluded from discovery.
	Entry string `yaml:"entry,omitempty"`
}

// OutputConfig controls where the catalog document is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// BuildConfig tunes the catalog build itself.
type BuildConfig struct {
	// Workers bounds concurrent per-tool processing. Results are always
	// reassembled into discovery order regardless of this value.
	Workers int `yaml:"workers,omitempty"`
}

// DescribeConfig configures the generated-description tier. The API key is
// never configured here; it is read from AZURE_OPENAI_API_KEY.
type DescribeConfig struct {
	Endpoint   string `yaml:"endpoint,omitempty"`
	Deployment string `yaml:"deployment,omitempty"`
	Timeout    string `yaml:"timeout,omitempty"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce,omitempty"`
	// Interval optionally schedules full rebuilds independent of file events.
	Interval string `yaml:"interval,omitempty"`
	NATSURL  string `yaml:"nats_url,omitempty"`
	Subject  string `yaml:"subject,omitempty"`
}

// MetricsConfig configures the optional Prometheus listener (watch mode only).
type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// HistoryConfig configures the optional SQLite build-run history.
type HistoryConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Load reads configuration from a YAML file and applies defaults.
// A missing file is not an error; the defaults describe a self-contained
// site in the current directory.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Site.Dir == "" {
		cfg.Site.Dir = "."
	}
	if cfg.Site.Entry == "" {
		cfg.Site.Entry = "index.html"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "tools.json"
	}
	if cfg.Build.Workers <= 0 {
		cfg.Build.Workers = 4
	}
	if cfg.Describe.Timeout == "" {
		cfg.Describe.Timeout = "15s"
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = "2s"
	}
	if cfg.Watch.Subject == "" {
		cfg.Watch.Subject = "toolindex.catalog.built"
	}
}

// TimeoutDuration returns the parsed generated-tier timeout.
func (c DescribeConfig) TimeoutDuration() time.Duration {
	return parseDuration(c.Timeout, 15*time.Second)
}

// DebounceDuration returns the parsed watch debounce window.
func (c WatchConfig) DebounceDuration() time.Duration {
	return parseDuration(c.Debounce, 2*time.Second)
}

// IntervalDuration returns the scheduled rebuild interval, zero when disabled.
func (c WatchConfig) IntervalDuration() time.Duration {
	return parseDuration(c.Interval, 0)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
