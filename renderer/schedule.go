package renderer

import (
	"github.com/etnz/clerk"
	md "github.com/nao1215/markdown"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ScheduleMarkdown renders the monthly income schedule. Twenty-four value
// columns is a lot for one terminal table, so the schedule is split into a
// table per group: one for the RRSP-registered accounts, one for the
// non-registered accounts.
func ScheduleMarkdown(report *clerk.ScheduleReport) string {
	return document(func(doc *md.Markdown) {
		doc.H1("Monthly Income Schedule")

		doc.H2("RRSP-registered")
		doc.Table(scheduleTable(report, func(row clerk.ScheduleRow, month int) clerk.Money {
			return row.RRSP[month]
		}))

		doc.H2("Non-registered")
		doc.Table(scheduleTable(report, func(row clerk.ScheduleRow, month int) clerk.Money {
			return row.NonRRSP[month]
		}))
	})
}

func scheduleTable(report *clerk.ScheduleReport, cell func(clerk.ScheduleRow, int) clerk.Money) md.TableSet {
	table := md.TableSet{
		Alignment: rightAligned(12),
		Header:    append([]string{"Name"}, monthNames...),
	}
	for _, row := range report.Rows {
		out := []string{row.Name}
		for month := 1; month <= 12; month++ {
			out = append(out, cell(row, month).Display())
		}
		table.Rows = append(table.Rows, out)
	}
	return table
}
