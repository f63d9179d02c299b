package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/toolindex/cmd/toolindex/commands"
	"git.home.luguber.info/inful/toolindex/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("toolindex"),
		kong.Description("Build a normalized metadata catalog for generated tool pages."),
		kong.Vars{"version": version.Version},
	)
	ctx.FatalIfErrorf(ctx.Run(&commands.Global{}, cli))
}
