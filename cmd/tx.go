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

// txFlags holds the flags shared by all transaction commands.
type txFlags struct {
	date    string
	name    string
	account string
	units   int64
	amount  string
	fees    string
}

func (p *txFlags) setCommon(f *flag.FlagSet, defaultName string) {
	f.StringVar(&p.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.name, "n", defaultName, "Asset name the transaction applies to.")
	f.StringVar(&p.account, "a", "", "Account (sdrsp, locked_sdrsp, margin, tfsa, resp).")
	f.Int64Var(&p.units, "u", 1, "Number of units.")
	f.StringVar(&p.amount, "m", "0", "Per-unit amount.")
	f.StringVar(&p.fees, "f", "0", "Transaction fees.")
}

// txArgs is the parsed form of txFlags.
type txArgs struct {
	date    clerk.Date
	name    string
	account clerk.Account
	units   int64
	amount  clerk.Money
	fees    clerk.Money
}

func (p *txFlags) parse() (txArgs, error) {
	var a txArgs
	var err error
	if p.date != "" {
		if a.date, err = clerk.ParseDate(p.date); err != nil {
			return a, fmt.Errorf("invalid date: %w", err)
		}
	}
	a.name = p.name
	if a.account, err = clerk.ParseAccount(p.account); err != nil {
		return a, err
	}
	a.units = p.units
	if a.amount, err = clerk.ParseMoney(p.amount); err != nil {
		return a, fmt.Errorf("invalid amount: %w", err)
	}
	if a.fees, err = clerk.ParseMoney(p.fees); err != nil {
		return a, fmt.Errorf("invalid fees: %w", err)
	}
	return a, nil
}

// runTransaction parses the shared flags, applies the built transaction, and
// persists books and log. Holdings and income rates live in the ledger, so
// the ledger file is rewritten only when the transaction could have changed
// them.
func runTransaction(flags *txFlags, build func(txArgs) clerk.Transaction) subcommands.ExitStatus {
	args, err := flags.parse()
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

	tx := build(args)

	// Capture the income rate before a dividend applies, to detect a change.
	var priorRate clerk.Money
	if tx.What() == clerk.KindDividend {
		priorRate, _ = ledger.IncomeRate(args.name)
	}

	rec, err := clerk.Apply(ledger, log, tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	saveLedger := false
	switch tx.What() {
	case clerk.KindBuy, clerk.KindSell, clerk.KindTransfer:
		saveLedger = true
	case clerk.KindDividend:
		rate, _ := ledger.IncomeRate(args.name)
		saveLedger = !rate.Equal(priorRate)
	}
	if saveLedger {
		if err := store.SaveLedger(ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	if err := store.SaveLog(log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	logger.Debug().Str("type", rec.Type.String()).Str("name", rec.Name).Msg("transaction recorded")
	printMarkdown(renderer.Record(rec))
	return subcommands.ExitSuccess
}

// --- buy ---

type buyCmd struct{ txFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of units into an account" }
func (*buyCmd) Usage() string {
	return `clk buy -n <asset> -a <account> -u <units> -m <amount> [-f <fees>] [-d <date>]

  Records a purchase and adds the units to the account holdings.
`
}
func (p *buyCmd) SetFlags(f *flag.FlagSet) { p.setCommon(f, "") }
func (p *buyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTransaction(&p.txFlags, func(a txArgs) clerk.Transaction {
		return clerk.NewBuy(a.date, a.name, a.account, a.units, a.amount, a.fees)
	})
}

// --- sell ---

type sellCmd struct{ txFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of units from an account" }
func (*sellCmd) Usage() string {
	return `clk sell -n <asset> -a <account> -u <units> -m <amount> [-f <fees>] [-d <date>]

  Records a sale and removes the units from the account holdings.
`
}
func (p *sellCmd) SetFlags(f *flag.FlagSet) { p.setCommon(f, "") }
func (p *sellCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTransaction(&p.txFlags, func(a txArgs) clerk.Transaction {
		return clerk.NewSell(a.date, a.name, a.account, a.units, a.amount, a.fees)
	})
}

// --- xfer ---

type xferCmd struct {
	txFlags
	target string
}

func (*xferCmd) Name() string     { return "xfer" }
func (*xferCmd) Synopsis() string { return "move units of an asset between two accounts" }
func (*xferCmd) Usage() string {
	return `clk xfer -n <asset> -a <source> -x <target> -u <units> [-m <amount>] [-f <fees>] [-d <date>]

  Moves units from the source account to the target account. The total unit
  count of the asset is unchanged.
`
}
func (p *xferCmd) SetFlags(f *flag.FlagSet) {
	p.setCommon(f, "")
	f.StringVar(&p.target, "x", "", "Target account to transfer the units into.")
}
func (p *xferCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// An omitted target stays the zero Account; Transfer.Validate reports it.
	var target clerk.Account
	if p.target != "" {
		var err error
		if target, err = clerk.ParseAccount(p.target); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	return runTransaction(&p.txFlags, func(a txArgs) clerk.Transaction {
		return clerk.NewTransfer(a.date, a.name, a.account, target, a.units, a.amount, a.fees)
	})
}

// --- cont ---

type contCmd struct{ txFlags }

func (*contCmd) Name() string     { return "cont" }
func (*contCmd) Synopsis() string { return "record a cash contribution into an account" }
func (*contCmd) Usage() string {
	return `clk cont -a <account> -m <amount> [-d <date>]

  Records a cash contribution. Contributions do not affect holdings; they
  only appear in the transaction log.
`
}
func (p *contCmd) SetFlags(f *flag.FlagSet) { p.setCommon(f, clerk.CashSubject) }
func (p *contCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTransaction(&p.txFlags, func(a txArgs) clerk.Transaction {
		return clerk.NewContribute(a.date, a.name, a.account, a.units, a.amount, a.fees)
	})
}

// --- cont_limit ---

type contLimitCmd struct{ txFlags }

func (*contLimitCmd) Name() string     { return "cont_limit" }
func (*contLimitCmd) Synopsis() string { return "record an increase of allowed contribution room" }
func (*contLimitCmd) Usage() string {
	return `clk cont_limit -a <account> -m <amount> [-d <date>]

  Records new contribution room granted for the account, typically once a
  year when the government announces the new limit.
`
}
func (p *contLimitCmd) SetFlags(f *flag.FlagSet) { p.setCommon(f, clerk.AnySubject) }
func (p *contLimitCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTransaction(&p.txFlags, func(a txArgs) clerk.Transaction {
		return clerk.NewContributionLimit(a.date, a.name, a.account, a.units, a.amount, a.fees)
	})
}

// --- div ---

type divCmd struct{ txFlags }

func (*divCmd) Name() string     { return "div" }
func (*divCmd) Synopsis() string { return "record a dividend or distribution payment" }
func (*divCmd) Usage() string {
	return `clk div -n <asset> -a <account> -u <units> -m <amount> [-f <fees>] [-d <date>]

  Records an income payment of <amount> per unit. When the per-unit rate
  differs from the stored one, the asset income rate is updated.
`
}
func (p *divCmd) SetFlags(f *flag.FlagSet) { p.setCommon(f, "") }
func (p *divCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTransaction(&p.txFlags, func(a txArgs) clerk.Transaction {
		return clerk.NewDividend(a.date, a.name, a.account, a.units, a.amount, a.fees)
	})
}

// --- withdraw ---

type withdrawCmd struct{ txFlags }

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a cash withdrawal from an account" }
func (*withdrawCmd) Usage() string {
	return `clk withdraw -a <account> -m <amount> [-d <date>]

  Records a cash withdrawal. Withdrawals do not affect holdings; they only
  appear in the transaction log.
`
}
func (p *withdrawCmd) SetFlags(f *flag.FlagSet) { p.setCommon(f, clerk.CashSubject) }
func (p *withdrawCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runTransaction(&p.txFlags, func(a txArgs) clerk.Transaction {
		return clerk.NewWithdraw(a.date, a.name, a.account, a.units, a.amount, a.fees)
	})
}
