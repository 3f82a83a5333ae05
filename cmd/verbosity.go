package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type verbosityCmd struct {
	toggle bool
}

func (*verbosityCmd) Name() string     { return "verbosity" }
func (*verbosityCmd) Synopsis() string { return "show or toggle the output verbosity" }
func (*verbosityCmd) Usage() string {
	return `clk verbosity [-toggle]

  Shows the current verbosity. With -toggle, switches between low and high
  and persists the new value in the settings file. High verbosity enables
  debug logging.
`
}

func (p *verbosityCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.toggle, "toggle", false, "Switch between low and high verbosity.")
}

func (p *verbosityCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, settings, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.toggle {
		settings.Toggle()
		if err := settings.Save(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		initLogger(settings)
	}
	fmt.Printf("verbosity: %s\n", settings.Verbosity)
	return subcommands.ExitSuccess
}
