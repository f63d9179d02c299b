package commands

import (
	"fmt"

	"git.home.luguber.info/inful/toolindex/internal/config"
	"git.home.luguber.info/inful/toolindex/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Site string `short:"s" help:"Site directory containing tool pages (overrides config)"`
}

func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if l.Site != "" {
		cfg.Site.Dir = l.Site
	}

	result, err := lint.Run(cfg.Site.Dir, cfg.Site.Entry)
	if err != nil {
		return err
	}

	for _, issue := range result.Issues {
		fmt.Printf("%s: %s: %s\n", issue.Slug, issue.Rule, issue.Message)
	}
	fmt.Printf("Checked %d tool(s), %d issue(s)\n", result.Files, len(result.Issues))

	if len(result.Issues) > 0 {
		return fmt.Errorf("%d lint issue(s) found", len(result.Issues))
	}
	return nil
}
