package renderer

import (
	"bytes"
	"fmt"

	"github.com/finapex/finapex"
	md "github.com/nao1215/markdown"
)

func newDoc() *md.Markdown {
	var buf bytes.Buffer
	return md.NewMarkdown(&buf)
}

// WalletsMarkdown renders the savings view: one line per wallet plus the
// savings goals, when any exist.
func WalletsMarkdown(wallets []finapex.Wallet, targets []finapex.SavingsTarget, lang, currency string) string {
	d := display{lang: lang, currency: currency}
	doc := newDoc()
	doc.H1(d.t("accounts"))
	appendWalletTable(doc, wallets, d)

	if len(targets) > 0 {
		doc.H2(d.t("goals"))
		rows := make([][]string, 0, len(targets))
		for _, t := range targets {
			rows = append(rows, []string{t.Name, d.money(t.Current), d.money(t.Target)})
		}
		doc.Table(md.TableSet{
			Header: []string{d.t("goalName"), d.t("balance"), d.t("goals")},
			Rows:   rows,
		})
	}
	return doc.String()
}

func appendWalletTable(doc *md.Markdown, wallets []finapex.Wallet, d display) {
	if len(wallets) == 0 {
		doc.PlainText(d.t("noData"))
		return
	}
	rows := make([][]string, 0, len(wallets))
	for _, w := range wallets {
		rows = append(rows, []string{
			w.Name,
			d.money(w.Balance),
			w.CreatedAt.Format(finapex.DateFormat),
			shortID(w.ID),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{d.t("walletName"), d.t("balance"), d.t("created"), "ID"},
		Rows:   rows,
	})
}

// shortID keeps the tail of an opaque id, enough to tell wallets apart.
func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return fmt.Sprintf("...%s", id[len(id)-4:])
}
