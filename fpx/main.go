package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finapex/finapex/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// a .env next to the binary can set FPX_PROFILE
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it is a no-op outside a completion
// request.
func completion() {
	sub := map[string]*complete.Command{}
	for _, name := range []string{
		"add", "edit", "delete", "tx",
		"wallet", "summary", "categories",
		"export", "restore", "csv", "query",
		"lang", "currency", "theme", "view", "topic",
	} {
		sub[name] = &complete.Command{}
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"profile": predict.Dirs("*"),
		},
	}
	root.Complete("fpx")
}
