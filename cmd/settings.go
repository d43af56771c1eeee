package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finapex/finapex"
	"github.com/google/subcommands"
)

// settingCmd mutates one piece of presentation configuration. Settings
// commits redraw like any other mutation.
type settingCmd struct {
	name     string
	synopsis string
	usage    string
	apply    func(*finapex.Store, string) error
}

func (c *settingCmd) Name() string             { return c.name }
func (c *settingCmd) Synopsis() string         { return c.synopsis }
func (c *settingCmd) Usage() string            { return c.usage }
func (c *settingCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one value.\n%s", c.usage)
		return subcommands.ExitUsageError
	}
	st, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	renderOnCommit(st)
	if err := c.apply(st, f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func newLangCmd() *settingCmd {
	return &settingCmd{
		name:     "lang",
		synopsis: "set the display language",
		usage:    "fpx lang <tag>\n\n  Sets the display language (en, id; region tags like en-US resolve).\n",
		apply:    func(st *finapex.Store, v string) error { return st.SetLanguage(v) },
	}
}

func newCurrencyCmd() *settingCmd {
	return &settingCmd{
		name:     "currency",
		synopsis: "set the display currency",
		usage:    "fpx currency <code>\n\n  Sets the ISO 4217 display currency (IDR, USD, ...).\n",
		apply:    func(st *finapex.Store, v string) error { return st.SetCurrency(v) },
	}
}

func newThemeCmd() *settingCmd {
	return &settingCmd{
		name:     "theme",
		synopsis: "set the display theme",
		usage:    "fpx theme <dark|light>\n\n  Sets the rendering theme.\n",
		apply:    func(st *finapex.Store, v string) error { return st.SetTheme(v) },
	}
}

func newViewCmd() *settingCmd {
	return &settingCmd{
		name:     "view",
		synopsis: "switch the current view",
		usage:    "fpx view <dashboard|savings>\n\n  Switches the persisted UI view.\n",
		apply:    func(st *finapex.Store, v string) error { return st.SwitchView(v) },
	}
}
