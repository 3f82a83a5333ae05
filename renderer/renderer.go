// Package renderer turns ledger data and report tables into markdown for
// terminal display. It renders strings only; callers decide how to print
// them.
package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// rightAligned returns a table alignment of n right-aligned numeric columns
// after one left-aligned label column.
func rightAligned(n int) []md.TableAlignment {
	alignment := []md.TableAlignment{md.AlignLeft}
	for i := 0; i < n; i++ {
		alignment = append(alignment, md.AlignRight)
	}
	return alignment
}

// document runs a build function over a fresh markdown document and returns
// the rendered string.
func document(build func(doc *md.Markdown)) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	build(doc)
	return doc.String()
}
