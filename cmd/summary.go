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

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard" }
func (*summaryCmd) Usage() string {
	return `fpx summary [-d <date>]

  Displays total net worth, month-to-date income and expense, the filtered
  transaction page, the expense-by-category breakdown and the wallet list.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Day to compute the month figures for (defaults to today).")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	today := finapex.Today()
	if p.date != "" {
		if today, err = finapex.ParseDate(p.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	s := st.GetSnapshot()
	dash := finapex.BuildDashboard(s, today)
	printMarkdown(renderer.DashboardMarkdown(dash, s.Settings.Language, s.Settings.Currency), s.Settings.Theme)
	return subcommands.ExitSuccess
}
