package renderer

import (
	"github.com/finapex/finapex"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders a transaction table. The resolve function maps
// wallet ids to display names.
func TransactionsMarkdown(txs []finapex.Transaction, resolve func(string) string, lang, currency string) string {
	d := display{lang: lang, currency: currency}
	doc := newDoc()
	doc.H1(d.t("transactions"))
	appendTransactionTableNamed(doc, txs, resolve, d)
	return doc.String()
}

func appendTransactionTable(doc *md.Markdown, txs []finapex.Transaction, d display) {
	appendTransactionTableNamed(doc, txs, nil, d)
}

func appendTransactionTableNamed(doc *md.Markdown, txs []finapex.Transaction, resolve func(string) string, d display) {
	if len(txs) == 0 {
		doc.PlainText(d.t("noData"))
		return
	}
	header := []string{d.t("date"), d.t("category"), d.t("notes"), d.t("amount")}
	if resolve != nil {
		header = append(header, d.t("wallet"))
	}
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		notes := t.Notes
		if notes == "" {
			notes = "-"
		}
		row := []string{t.Date.String(), t.Category, notes, d.signed(t.Amount, t.Type)}
		if resolve != nil {
			row = append(row, resolve(t.WalletID))
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
}
