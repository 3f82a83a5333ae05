package renderer

import (
	"fmt"
	"strconv"

	"github.com/etnz/clerk"
	md "github.com/nao1215/markdown"
)

// ContributionSummaryMarkdown renders the tfsa contribution summary with
// the computed room called out above the per-type table.
func ContributionSummaryMarkdown(summary *clerk.ContributionSummary) string {
	return document(func(doc *md.Markdown) {
		doc.H1("TFSA Summary")
		doc.PlainText(fmt.Sprintf("Total Contribution Room = %s (cont_limit + withdraw - cont - xfer_in)",
			summary.Room().Display()))
		table := md.TableSet{
			Alignment: rightAligned(2),
			Header:    []string{"Type", "Num", "Total"},
		}
		for _, row := range summary.Rows {
			table.Rows = append(table.Rows, []string{row.Type, strconv.Itoa(row.Num), row.Total.Display()})
		}
		doc.Table(table)
	})
}
