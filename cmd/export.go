package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finapex/finapex"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full snapshot as a JSON backup" }
func (*exportCmd) Usage() string {
	return `fpx export [-o <file>]

  Writes the entire snapshot in the backup format, the exact shape of the
  persisted state. Defaults to stdout.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "File to write the backup to (defaults to stdout).")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if p.output != "" {
		out, err = os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening backup file %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := finapex.ExportBackup(out, st.GetSnapshot()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
