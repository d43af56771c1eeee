package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finapex/finapex"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the category set" }
func (*categoriesCmd) Usage() string {
	return `fpx categories

  Lists the categories in first-seen order. The set is append-only: a new
  category appears when a transaction first uses it and is never removed.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (p *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s := st.GetSnapshot()
	var b strings.Builder
	for _, c := range finapex.CategoryList(s) {
		fmt.Fprintf(&b, "* %s\n", c)
	}
	printMarkdown(b.String(), s.Settings.Theme)
	return subcommands.ExitSuccess
}
