package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"toolindex.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Build the tool catalog once and write it to disk"`
	Watch    WatchCmd    `cmd:"" help:"Rebuild the catalog continuously on site changes"`
	Lint     LintCmd     `cmd:"" help:"Check companion docs for metadata problems"`
	Colophon ColophonCmd `cmd:"" help:"Gather commit history for colophon assembly"`
	History  HistoryCmd  `cmd:"" help:"Show recent catalog build runs"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
