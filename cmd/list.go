package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/clerk"
	"github.com/etnz/clerk/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	filter string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display a saved dataset, optionally filtered" }
func (*listCmd) Usage() string {
	return `clk list [-filter <expr>] <dataset>

  Displays the rows of a saved dataset. Without argument, lists the
  available datasets. The filter is a comma-separated list of clauses,
  each comparing a column to a value:

    clk list -filter "name=TD,units>100" assets

  Supported operators: = != < > <= >=. Clauses are combined with AND.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.filter, "filter", "", "Row filter expression, e.g. \"account=tfsa,units>0\".")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		for _, ds := range clerk.AllDatasets() {
			fmt.Printf("  %-24s %s\n", ds, ds.Description())
		}
		return subcommands.ExitSuccess
	}
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: list expects at most one dataset name.")
		return subcommands.ExitUsageError
	}
	ds, err := clerk.ParseDataset(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var filter *clerk.RowFilter
	if p.filter != "" {
		if filter, err = clerk.ParseRowFilter(p.filter); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rows, err := store.LoadTable(ds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	columns := ds.Columns()
	if filter != nil {
		kept := rows[:0]
		for _, row := range rows {
			ok, err := filter.Match(columns, row)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			if ok {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	printMarkdown(renderer.DatasetMarkdown(string(ds), columns, rows))
	return subcommands.ExitSuccess
}
