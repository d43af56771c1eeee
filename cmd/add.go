package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finapex/finapex"
	"github.com/google/subcommands"
)

type addCmd struct {
	typ      string
	wallet   string
	amount   string
	category string
	date     string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `fpx add -amount <amount> [-type in|out] [-w <wallet_id>] [-c <category>] [-d <date>] [-notes <text>]

  Records a transaction and adjusts the target wallet's balance. A category
  never seen before is added to the category set.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "type", "out", "Transaction direction (in, out).")
	f.StringVar(&p.wallet, "w", finapex.PrimaryWalletID, "Wallet to route the transaction to.")
	f.StringVar(&p.amount, "amount", "", "Transaction amount, must be positive.")
	f.StringVar(&p.category, "c", "", "Free-text category label.")
	f.StringVar(&p.date, "d", "", "Transaction date (defaults to today).")
	f.StringVar(&p.notes, "notes", "", "Free-text notes.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	typ, err := finapex.ParseTxType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := finapex.ParseAmount(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
		return subcommands.ExitUsageError
	}
	day := finapex.Today()
	if p.date != "" {
		if day, err = finapex.ParseDate(p.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	renderOnCommit(st)
	tx, err := st.AddTransaction(finapex.TransactionInput{
		WalletID: p.wallet,
		Type:     typ,
		Amount:   amount,
		Category: p.category,
		Date:     day,
		Notes:    p.notes,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Recorded transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}
