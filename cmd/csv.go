package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finapex/finapex"
	"github.com/google/subcommands"
)

type csvCmd struct {
	output string
}

func (*csvCmd) Name() string     { return "csv" }
func (*csvCmd) Synopsis() string { return "export the transaction log as CSV" }
func (*csvCmd) Usage() string {
	return `fpx csv [-o <file>]

  Writes one row per transaction with columns Date, Category, Amount, Type,
  Notes and Wallet. The wallet name resolves against the current wallet set;
  a missing wallet renders as "Unknown". Defaults to stdout.
`
}

func (p *csvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "File to write the CSV to (defaults to stdout).")
}

func (p *csvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if p.output != "" {
		out, err = os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening CSV file %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := finapex.ExportCSV(out, st.GetSnapshot()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
