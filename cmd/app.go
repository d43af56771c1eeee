// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/finapex/finapex"
	"github.com/finapex/finapex/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&walletCmd{}, "wallets")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&restoreCmd{}, "backup")
	c.Register(&csvCmd{}, "backup")
	c.Register(&queryCmd{}, "backup")

	c.Register(newLangCmd(), "settings")
	c.Register(newCurrencyCmd(), "settings")
	c.Register(newThemeCmd(), "settings")
	c.Register(newViewCmd(), "settings")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var profileFlag = flag.String("profile", "", "Path to the profile directory holding the snapshot (defaults to $FPX_PROFILE, then \".\")")

// Profile resolves the profile directory from the flag, then the environment.
func Profile() string {
	if *profileFlag != "" {
		return *profileFlag
	}
	if env := os.Getenv("FPX_PROFILE"); env != "" {
		return env
	}
	return "."
}

// LoadStore loads the profile snapshot and wraps it in a store that persists
// back into the profile on every commit.
func LoadStore() (*finapex.Store, error) {
	snap, err := finapex.LoadSnapshot(Profile())
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, snapshot does not exist, starting from a fresh ledger")
		snap, err = finapex.NewSnapshot(time.Now()), nil
	}
	if err != nil {
		return nil, err
	}
	return finapex.NewStore(snap, finapex.FilePersister{Profile: Profile()}), nil
}

// renderOnCommit wires the redraw hook: after every commit the dashboard is
// recomputed from scratch and printed. There is no diffing; a full redraw
// every time.
func renderOnCommit(st *finapex.Store) {
	st.OnCommit(func(s *finapex.Snapshot) {
		dash := finapex.BuildDashboard(s, finapex.Today())
		printMarkdown(renderer.DashboardMarkdown(dash, s.Settings.Language, s.Settings.Currency), s.Settings.Theme)
	})
}
