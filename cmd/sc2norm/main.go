package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Roster  RosterCmd        `cmd:"" help:"Show who played in one or more replay dumps"`
	Teams   TeamsCmd         `cmd:"" help:"Show team lineups and identity hashes"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sc2norm"),
		kong.Description("Participant normalization for decoded StarCraft II replays"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
