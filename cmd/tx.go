package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finapex/finapex"
	"github.com/finapex/finapex/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	query string
	page  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, filtered and paginated" }
func (*txCmd) Usage() string {
	return `fpx tx [-q <query>] [-page <n>]

  Lists the transaction page matching the live search query, a
  case-insensitive substring match over notes and category. The query and the
  page are part of the persisted UI state: setting them commits like any
  other mutation.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Search query over notes and category.")
	f.IntVar(&p.page, "page", 0, "Page of the transaction table to show.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var queryChanged, pageChanged bool
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "q":
			queryChanged = true
		case "page":
			pageChanged = true
		}
	})
	if queryChanged {
		if err := st.SetSearchQuery(p.query); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if pageChanged {
		if err := st.SetPage(p.page); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	s := st.GetSnapshot()
	filtered := finapex.FilterTransactions(s)
	pageTxs := finapex.Paginate(filtered, s.UI.CurrentPage, s.UI.ItemsPerPage)
	printMarkdown(renderer.TransactionsMarkdown(pageTxs, s.WalletName, s.Settings.Language, s.Settings.Currency), s.Settings.Theme)
	fmt.Printf("Page %d/%d\n", s.UI.CurrentPage, finapex.Pages(len(filtered), s.UI.ItemsPerPage))
	return subcommands.ExitSuccess
}
