package renderer

import (
	"github.com/etnz/clerk"
	md "github.com/nao1215/markdown"
)

// MonthlyIncomeMarkdown renders a projected or realized monthly income
// report as a markdown table.
func MonthlyIncomeMarkdown(title string, report *clerk.MonthlyIncomeReport) string {
	return document(func(doc *md.Markdown) {
		doc.H1(title)
		table := md.TableSet{
			Alignment: rightAligned(9),
			Header: []string{"Name", "SDRSP", "Locked SDRSP", "Margin", "TFSA", "RESP",
				"Total RRSP", "Total Non-RRSP", "Monthly Total", "Yearly Total"},
		}
		for _, row := range report.Rows {
			out := []string{row.Name}
			for _, account := range clerk.AllAccounts() {
				out = append(out, row.Accounts[account].Display())
			}
			out = append(out, row.TotalRRSP.Display(), row.TotalNonRRSP.Display(),
				row.MonthlyTotal.Display(), row.YearlyTotal.Display())
			table.Rows = append(table.Rows, out)
		}
		doc.Table(table)
	})
}
