package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/clerk"
	"github.com/google/subcommands"
)

type datapathCmd struct {
	set string
}

func (*datapathCmd) Name() string     { return "datapath" }
func (*datapathCmd) Synopsis() string { return "show or change the data directory" }
func (*datapathCmd) Usage() string {
	return `clk datapath [-set <dir>]

  Without flag, shows the current data directory and verifies that it holds
  all the data files. With -set, checks the new directory the same way and
  persists it in the settings file.
`
}

func (p *datapathCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "New data directory to use and persist.")
}

func (p *datapathCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, settings, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.set == "" {
		fmt.Printf("datapath: %s\n", store.Dir())
		if err := store.CheckFiles(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println("all data files present")
		return subcommands.ExitSuccess
	}

	candidate := clerk.NewStore(p.set)
	if err := candidate.CheckFiles(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	settings.DataPath = p.set
	if err := settings.Save(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("datapath set to %s\n", p.set)
	return subcommands.ExitSuccess
}
