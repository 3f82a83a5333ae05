package clerk

// Asset is a named financial instrument tracked by the ledger, with its
// per-account unit holdings and income-generation metadata.
//
// Assets are created externally (in the assets data file) and are never
// deleted by the core; transactions only mutate holdings and the income rate.
type Asset struct {
	Name    string // unique, case-sensitive identity
	Market  string // free-form classification, e.g. "tsx"
	Type    string // free-form classification, e.g. "stock"
	Subtype string // free-form classification, e.g. "bank"

	// IncomePerUnitPeriod is the income paid per unit per payment event.
	IncomePerUnitPeriod Money
	// IncomeFreqMonths is the number of months between payment events.
	IncomeFreqMonths int
	// IncomeFirstMonth is the first calendar month (1-12) a payment occurs.
	IncomeFirstMonth int
	// IncomeDayOfMonth is the day of the month payments occur.
	IncomeDayOfMonth int

	holdings [6]int64 // unit count per Account, indexed by Account (index 0 unused)
}

// Units returns the unit count held in the given account.
func (a *Asset) Units(account Account) int64 { return a.holdings[account] }

// SetUnits overwrites the unit count held in the given account. The caller
// must have validated non-negativity.
func (a *Asset) SetUnits(account Account, units int64) { a.holdings[account] = units }

// TotalUnits returns the unit count summed over all accounts.
func (a *Asset) TotalUnits() int64 {
	var total int64
	for _, account := range AllAccounts() {
		total += a.holdings[account]
	}
	return total
}
