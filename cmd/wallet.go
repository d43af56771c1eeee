package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finapex/finapex/renderer"
	"github.com/google/subcommands"
)

type walletCmd struct {
	add     string
	balance string
	del     string
}

func (*walletCmd) Name() string     { return "wallet" }
func (*walletCmd) Synopsis() string { return "list, create or delete wallets" }
func (*walletCmd) Usage() string {
	return `fpx wallet [-add <name> [-balance <amount>]] [-delete <wallet_id>]

  Without flags, lists the wallets and savings goals. -add creates a wallet
  with an optional initial balance (malformed or empty balances coerce to 0).
  -delete removes a wallet; its transactions are reassigned to the primary
  wallet, which absorbs their signed sum. The primary wallet cannot be
  deleted.
`
}

func (p *walletCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.add, "add", "", "Name of the wallet to create.")
	f.StringVar(&p.balance, "balance", "", "Initial balance for -add.")
	f.StringVar(&p.del, "delete", "", "Id of the wallet to delete.")
}

func (p *walletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case p.add != "":
		renderOnCommit(st)
		w, err := st.AddWallet(p.add, p.balance)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Created wallet %s (%s)\n", w.Name, w.ID)
	case p.del != "":
		renderOnCommit(st)
		if err := st.DeleteWallet(p.del); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Deleted wallet %s\n", p.del)
	default:
		s := st.GetSnapshot()
		printMarkdown(renderer.WalletsMarkdown(s.Wallets, s.SavingsTargets, s.Settings.Language, s.Settings.Currency), s.Settings.Theme)
	}
	return subcommands.ExitSuccess
}
