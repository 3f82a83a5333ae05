package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/clerk"
	"github.com/etnz/clerk/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	noSave bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute a report, display it, and save it as CSV" }
func (*reportCmd) Usage() string {
	return `clk report [-no-save] <report>

  Computes one of the reports, renders it on the terminal, and saves it in
  the data directory alongside a timestamped snapshot. Available reports:

    monthly_income           projected monthly income per asset and account
    monthly_income_schedule  projected income spread over the calendar months
    monthly_income_actual    income based on the last recorded dividends
    tfsa_summary             TFSA contributions and remaining room
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.noSave, "no-save", false, "Only display the report, do not write CSV files.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: report expects exactly one report name.")
		return subcommands.ExitUsageError
	}
	ds, err := clerk.ParseDataset(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, log, err := loadBooks(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var md string
	var encode func(io.Writer) error

	switch ds {
	case clerk.DatasetMonthlyIncome:
		report := clerk.MonthlyIncome(ledger)
		md = renderer.MonthlyIncomeMarkdown("Monthly Income", report)
		encode = func(w io.Writer) error { return clerk.EncodeMonthlyIncome(w, report) }
	case clerk.DatasetMonthlyIncomeActual:
		report := clerk.MonthlyIncomeActual(ledger, log)
		md = renderer.MonthlyIncomeMarkdown("Monthly Income (actual)", report)
		encode = func(w io.Writer) error { return clerk.EncodeMonthlyIncome(w, report) }
	case clerk.DatasetMonthlyIncomeSchedule:
		report := clerk.MonthlyIncomeSchedule(ledger)
		md = renderer.ScheduleMarkdown(report)
		encode = func(w io.Writer) error { return clerk.EncodeSchedule(w, report) }
	case clerk.DatasetTFSASummary:
		summary := clerk.ContributionRoom(log)
		md = renderer.ContributionSummaryMarkdown(summary)
		encode = func(w io.Writer) error { return clerk.EncodeContributionSummary(w, summary) }
	default:
		fmt.Fprintf(os.Stderr, "Error: %q is not a report.\n", ds)
		return subcommands.ExitUsageError
	}

	printMarkdown(md)

	if !p.noSave {
		if err := store.SaveTable(ds, encode); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		logger.Debug().Str("file", store.Path(ds)).Msg("report saved")
	}
	return subcommands.ExitSuccess
}
