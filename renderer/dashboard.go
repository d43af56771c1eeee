package renderer

import (
	"bytes"
	"fmt"

	"github.com/finapex/finapex"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the full dashboard: headline figures, the
// filtered transaction page, the wallet summary and the expense-by-category
// breakdown.
func DashboardMarkdown(dash *finapex.Dashboard, lang, currency string) string {
	d := display{lang: lang, currency: currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s — %s", d.t("title"), dash.Summary.Date))
	doc.PlainText(fmt.Sprintf("%s: %s", d.t("totalNet"), d.money(dash.Summary.TotalNet)))
	doc.PlainText(fmt.Sprintf("%s: %s", d.t("income"), d.money(dash.Summary.MonthIncome)))
	doc.PlainText(fmt.Sprintf("%s: %s", d.t("expense"), d.money(dash.Summary.MonthExpense)))

	doc.H2(d.t("transactions"))
	appendTransactionTable(doc, dash.Transactions, d)
	doc.PlainText(fmt.Sprintf("%s %d/%d", d.t("page"), dash.Page, dash.PageCount))

	doc.H2(d.t("byCategory"))
	if len(dash.Expenses) == 0 {
		doc.PlainText(d.t("noData"))
	} else {
		rows := make([][]string, 0, len(dash.Expenses))
		for _, e := range dash.Expenses {
			rows = append(rows, []string{e.Category, d.money(e.Total)})
		}
		doc.Table(md.TableSet{
			Header: []string{d.t("category"), d.t("expense")},
			Rows:   rows,
		})
	}

	doc.H2(d.t("accounts"))
	appendWalletTable(doc, dash.Wallets, d)

	return doc.String()
}
