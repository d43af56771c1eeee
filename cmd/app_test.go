package cmd

import (
	"flag"
	"testing"
)

func TestProfile(t *testing.T) {
	t.Setenv("FPX_PROFILE", "")
	if got := Profile(); got != "." {
		t.Errorf("Profile() = %q, want the current directory", got)
	}
	t.Setenv("FPX_PROFILE", "/tmp/ledger")
	if got := Profile(); got != "/tmp/ledger" {
		t.Errorf("Profile() = %q, want the environment value", got)
	}
}

func TestWalletCmd(t *testing.T) {
	var c walletCmd
	if c.Name() != "wallet" {
		t.Errorf("Name() = %q", c.Name())
	}
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	for _, name := range []string{"add", "balance", "delete"} {
		if f.Lookup(name) == nil {
			t.Errorf("wallet command has no -%s flag", name)
		}
	}
}
