package commands

import (
	"fmt"

	"git.home.luguber.info/inful/toolindex/internal/colophon"
)

// ColophonCmd implements the 'colophon' command.
type ColophonCmd struct {
	Repo   string `short:"r" help:"Repository path" default:"."`
	Output string `short:"o" help:"Commit history output path" default:"colophon.json"`
	Limit  int    `short:"n" help:"Maximum number of commits" default:"50"`
}

func (c *ColophonCmd) Run(_ *Global, _ *CLI) error {
	commits, err := colophon.Gather(c.Repo, c.Limit)
	if err != nil {
		return err
	}
	if err := colophon.Write(c.Output, commits); err != nil {
		return err
	}

	fmt.Printf("Wrote %d commit(s) to %s\n", len(commits), c.Output)
	return nil
}
