package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finapex/finapex"
	"github.com/google/subcommands"
)

type editCmd struct {
	typ      string
	wallet   string
	amount   string
	category string
	date     string
	notes    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "update an existing transaction by id" }
func (*editCmd) Usage() string {
	return `fpx edit <transaction_id> [-type in|out] [-w <wallet_id>] [-amount <amount>] [-c <category>] [-d <date>] [-notes <text>]

  Updates the given fields of a transaction; unset flags keep their stored
  value. The old balance effect is reversed on the old wallet before the new
  effect is applied, so moving a transaction between wallets or flipping its
  direction keeps every balance consistent.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "type", "", "New transaction direction (in, out).")
	f.StringVar(&p.wallet, "w", "", "New wallet id.")
	f.StringVar(&p.amount, "amount", "", "New amount.")
	f.StringVar(&p.category, "c", "", "New category label.")
	f.StringVar(&p.date, "d", "", "New date.")
	f.StringVar(&p.notes, "notes", "", "New notes.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	// Only flags the user explicitly set end up in the patch.
	var patch finapex.TransactionPatch
	var badFlag error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "type":
			typ, err := finapex.ParseTxType(p.typ)
			if err != nil {
				badFlag = err
				return
			}
			patch.Type = &typ
		case "w":
			patch.WalletID = &p.wallet
		case "amount":
			amount, err := finapex.ParseAmount(p.amount)
			if err != nil {
				badFlag = fmt.Errorf("parsing amount %q: %w", p.amount, err)
				return
			}
			patch.Amount = &amount
		case "c":
			patch.Category = &p.category
		case "d":
			day, err := finapex.ParseDate(p.date)
			if err != nil {
				badFlag = err
				return
			}
			patch.Date = &day
		case "notes":
			patch.Notes = &p.notes
		}
	})
	if badFlag != nil {
		fmt.Fprintln(os.Stderr, badFlag)
		return subcommands.ExitUsageError
	}

	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	renderOnCommit(st)
	if err := st.UpdateTransaction(id, patch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Updated transaction %s\n", id)
	return subcommands.ExitSuccess
}
