package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the snapshot with a JSON backup" }
func (*restoreCmd) Usage() string {
	return `fpx restore <backup.json>

  Replaces the entire snapshot with the backup, verbatim, no merge. The
  payload must be valid JSON and carry both a transactions and a wallets
  field.
`
}

func (*restoreCmd) SetFlags(f *flag.FlagSet) {}

func (p *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file.")
		return subcommands.ExitUsageError
	}
	payload, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	renderOnCommit(st)
	if err := st.RestoreFromBackup(payload); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stderr, "Data restored successfully.")
	return subcommands.ExitSuccess
}
