package renderer

import (
	"fmt"

	md "github.com/nao1215/markdown"
)

// DatasetMarkdown renders raw table rows, as read from a data file, into a
// markdown table. Used by the list command, which shows datasets verbatim.
func DatasetMarkdown(title string, columns []string, rows [][]string) string {
	return document(func(doc *md.Markdown) {
		doc.H1(title)
		table := md.TableSet{Header: columns, Rows: rows}
		doc.Table(table)
		doc.PlainText(fmt.Sprintf("[%d rows x %d columns]", len(rows), len(columns)))
	})
}
