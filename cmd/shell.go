package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run commands interactively" }
func (*shellCmd) Usage() string {
	return `clk shell

  Reads commands from standard input, one per line, and executes them as if
  passed on the command line. Type "exit" or press Ctrl-D to leave.
`
}

func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (p *shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("clk> ")
		if !scanner.Scan() {
			fmt.Println()
			return subcommands.ExitSuccess
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return subcommands.ExitSuccess
		}
		p.dispatch(ctx, strings.Fields(line))
	}
}

// dispatch runs one shell line through a fresh commander, so every line
// starts from clean flag state.
func (*shellCmd) dispatch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("clk", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "clk")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	Register(commander)
	if err := fs.Parse(args); err != nil {
		return
	}
	commander.Execute(ctx)
}
