// Package cmd implements the CLI application to manage the investment ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/clerk"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&xferCmd{}, "transactions")
	c.Register(&contCmd{}, "transactions")
	c.Register(&contLimitCmd{}, "transactions")
	c.Register(&divCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")

	c.Register(&reportCmd{}, "reports")
	c.Register(&listCmd{}, "reports")

	c.Register(&datapathCmd{}, "settings")
	c.Register(&verbosityCmd{}, "settings")

	c.Register(&shellCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var settingsFile = flag.String("settings", "clerk.toml", "Path to the settings file")
var dataPath = flag.String("data-path", "", "Override the data directory from the settings file")

// openStore loads the settings, initializes logging accordingly, and roots
// a store at the resolved data directory.
func openStore() (*clerk.Store, *Settings, error) {
	settings, err := LoadSettings(*settingsFile)
	if err != nil {
		return nil, nil, err
	}
	if *dataPath != "" {
		settings.DataPath = *dataPath
	}
	initLogger(settings)
	store := clerk.NewStore(settings.DataPath)
	logger.Debug().Str("datapath", store.Dir()).Msg("store opened")
	return store, settings, nil
}

// loadBooks reads both the ledger and the transaction log from the store.
func loadBooks(store *clerk.Store) (*clerk.Ledger, *clerk.TransactionLog, error) {
	ledger, err := store.LoadLedger()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load ledger: %w", err)
	}
	log, err := store.LoadLog()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load transaction log: %w", err)
	}
	return ledger, log, nil
}
