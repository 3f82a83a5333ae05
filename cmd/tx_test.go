package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/clerk"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// newTestBooks writes a minimal data directory and points the global flags
// at it for the duration of the test.
func newTestBooks(t *testing.T) *clerk.Store {
	t.Helper()
	store := clerk.NewStore(t.TempDir())

	td := &clerk.Asset{
		Name: "TD", Market: "tsx", Type: "stock", Subtype: "bank",
		IncomePerUnitPeriod: clerk.M(0.25),
		IncomeFreqMonths:    1,
		IncomeFirstMonth:    1,
		IncomeDayOfMonth:    28,
	}
	td.SetUnits(clerk.SDRSP, 100)
	ledger := clerk.NewLedger()
	ledger.Add(td)
	require.NoError(t, store.SaveLedger(ledger))
	require.NoError(t, store.SaveLog(clerk.NewTransactionLog()))

	prevData, prevSettings := *dataPath, *settingsFile
	*dataPath = store.Dir()
	*settingsFile = filepath.Join(t.TempDir(), "clerk.toml")
	t.Cleanup(func() { *dataPath, *settingsFile = prevData, prevSettings })
	return store
}

// runCmd parses args through the command's own flag set and executes it.
func runCmd(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(context.Background(), fs)
}

func TestXferCommand(t *testing.T) {
	store := newTestBooks(t)

	status := runCmd(t, &xferCmd{}, "-n", "TD", "-a", "sdrsp", "-x", "tfsa", "-u", "40")
	require.Equal(t, subcommands.ExitSuccess, status)

	ledger, err := store.LoadLedger()
	require.NoError(t, err)
	require.Equal(t, int64(60), ledger.Asset("TD").Units(clerk.SDRSP))
	require.Equal(t, int64(40), ledger.Asset("TD").Units(clerk.TFSA))

	log, err := store.LoadLog()
	require.NoError(t, err)
	require.Equal(t, 1, log.Len())
}

func TestXferCommandWithoutTarget(t *testing.T) {
	store := newTestBooks(t)

	// The missing target is a validation failure reported by the core, not
	// a flag parsing error; books and log stay untouched.
	status := runCmd(t, &xferCmd{}, "-n", "TD", "-a", "sdrsp", "-u", "40")
	require.Equal(t, subcommands.ExitFailure, status)

	ledger, err := store.LoadLedger()
	require.NoError(t, err)
	require.Equal(t, int64(100), ledger.Asset("TD").Units(clerk.SDRSP))

	log, err := store.LoadLog()
	require.NoError(t, err)
	require.Equal(t, 0, log.Len())
}
