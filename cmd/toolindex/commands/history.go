package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/toolindex/internal/config"
	"git.home.luguber.info/inful/toolindex/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int `short:"n" help:"Maximum number of runs to show" default:"20"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("history is not configured; set history.path in %s", root.Config)
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s  tools=%d explicit=%d generated=%d default=%d  %s\n",
			run.Finished.Format("2006-01-02 15:04:05"),
			run.RunID,
			run.Tools, run.Explicit, run.Generated, run.Fallback,
			run.Output,
		)
	}
	return nil
}
