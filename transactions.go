package clerk

// Kind is a typed string identifying a transaction type.
type Kind string

// Transaction kinds, as they appear in the transactions data file.
const (
	KindBuy               Kind = "buy"
	KindSell              Kind = "sell"
	KindTransfer          Kind = "xfer"
	KindContribute        Kind = "cont"
	KindContributionLimit Kind = "cont_limit"
	KindDividend          Kind = "div"
	KindWithdraw          Kind = "withdraw"

	// KindTransferIn is a synthetic relabel used only by the contribution-room
	// summary for transfers whose target account is tfsa. It never appears in
	// the transaction log itself.
	KindTransferIn Kind = "xfer_in"
)

func (k Kind) String() string { return string(k) }

// ParseKind parses a string into a transaction Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBuy, KindSell, KindTransfer, KindContribute, KindContributionLimit, KindDividend, KindWithdraw:
		return Kind(s), nil
	default:
		return "", UnknownKindError{Value: s}
	}
}

// UnknownKindError reports an unrecognized transaction type string.
type UnknownKindError struct{ Value string }

func (e UnknownKindError) Error() string { return "unknown transaction type: " + e.Value }

// Sentinel subjects for cash events: contributions and withdrawals move cash,
// contribution limits apply to anything.
const (
	CashSubject = "cash"
	AnySubject  = "any"
)

// Transaction is the common interface of all transaction variants. A
// transaction validates its preconditions against the ledger, mutates the
// ledger (or not), and reduces to the immutable Record appended to the log.
type Transaction interface {
	What() Kind // the transaction kind, e.g. "buy".
	When() Date // the date the transaction occurred.

	// Record returns the immutable log record, with its derived total.
	Record() Record

	// Validate checks every precondition against the ledger without mutating
	// anything.
	Validate(l *Ledger) error

	// apply performs the ledger effect. It must only be called after Validate
	// succeeded on the same ledger.
	apply(l *Ledger)
}

// baseTx carries the fields every transaction shares.
type baseTx struct {
	Date    Date
	Name    string
	Account Account
	Units   int64
	Amount  Money // price per unit, dividend per unit, or amount per unit
	Fees    Money
}

// When returns the date of the transaction.
func (t baseTx) When() Date { return t.Date }

func newBase(day Date, name string, account Account, units int64, amount, fees Money) baseTx {
	if day.IsZero() {
		day = Today()
	}
	return baseTx{Date: day, Name: name, Account: account, Units: units, Amount: amount, Fees: fees}
}

// record builds the common part of the log record. Persisted monetary cells
// are rounded to cents; the total is computed from the unrounded inputs
// first, then rounded itself.
func (t baseTx) record(kind Kind, total Money) Record {
	return Record{
		Date:       t.Date,
		Type:       kind,
		Name:       t.Name,
		Account:    t.Account,
		Units:      t.Units,
		UnitAmount: t.Amount.Round2(),
		Fees:       t.Fees.Round2(),
		Total:      total.Round2(),
	}
}

// costTotal is units*amount + fees, the total of buys, sells, transfers and
// contributions.
func (t baseTx) costTotal() Money {
	return t.Amount.MulUnits(t.Units).Add(t.Fees)
}

// --- Buy ---

// Buy adds purchased units to an account.
type Buy struct {
	baseTx
}

// NewBuy creates a new Buy transaction. A zero day defaults to today.
func NewBuy(day Date, name string, account Account, units int64, amount, fees Money) Buy {
	return Buy{newBase(day, name, account, units, amount, fees)}
}

func (t Buy) What() Kind     { return KindBuy }
func (t Buy) Record() Record { return t.record(KindBuy, t.costTotal()) }

// Validate checks that the asset exists in the ledger.
func (t Buy) Validate(l *Ledger) error {
	if !l.Has(t.Name) {
		return UnknownAssetError{Name: t.Name}
	}
	return nil
}

func (t Buy) apply(l *Ledger) {
	a := l.Asset(t.Name)
	a.SetUnits(t.Account, a.Units(t.Account)+t.Units)
}

// --- Sell ---

// Sell removes sold units from an account.
type Sell struct {
	baseTx
}

// NewSell creates a new Sell transaction. A zero day defaults to today.
func NewSell(day Date, name string, account Account, units int64, amount, fees Money) Sell {
	return Sell{newBase(day, name, account, units, amount, fees)}
}

func (t Sell) What() Kind     { return KindSell }
func (t Sell) Record() Record { return t.record(KindSell, t.costTotal()) }

// Validate checks that the asset exists and that the account holds enough
// units to sell.
func (t Sell) Validate(l *Ledger) error {
	a := l.Asset(t.Name)
	if a == nil {
		return UnknownAssetError{Name: t.Name}
	}
	if held := a.Units(t.Account); held < t.Units {
		return InsufficientUnitsError{Name: t.Name, Account: t.Account, Requested: t.Units, Available: held}
	}
	return nil
}

func (t Sell) apply(l *Ledger) {
	a := l.Asset(t.Name)
	a.SetUnits(t.Account, a.Units(t.Account)-t.Units)
}

// --- Transfer ---

// Transfer moves units of an asset between two accounts, conserving the
// total unit count.
type Transfer struct {
	baseTx
	Target Account // destination account; zero means none was supplied
}

// NewTransfer creates a new Transfer transaction. A zero day defaults to today.
func NewTransfer(day Date, name string, account, target Account, units int64, amount, fees Money) Transfer {
	return Transfer{baseTx: newBase(day, name, account, units, amount, fees), Target: target}
}

func (t Transfer) What() Kind { return KindTransfer }

func (t Transfer) Record() Record {
	rec := t.record(KindTransfer, t.costTotal())
	rec.XferAccount = t.Target
	return rec
}

// Validate checks that a distinct target account was supplied, that the
// asset exists, and that the source account holds enough units.
func (t Transfer) Validate(l *Ledger) error {
	if t.Target == 0 || t.Target == t.Account {
		return MissingTransferTargetError{Source: t.Account}
	}
	a := l.Asset(t.Name)
	if a == nil {
		return UnknownAssetError{Name: t.Name}
	}
	if held := a.Units(t.Account); held < t.Units {
		return InsufficientUnitsError{Name: t.Name, Account: t.Account, Requested: t.Units, Available: held}
	}
	return nil
}

func (t Transfer) apply(l *Ledger) {
	a := l.Asset(t.Name)
	a.SetUnits(t.Account, a.Units(t.Account)-t.Units)
	a.SetUnits(t.Target, a.Units(t.Target)+t.Units)
}

// --- Contribute ---

// Contribute records a cash contribution into an account. It has no ledger
// effect; only the log records it.
type Contribute struct {
	baseTx
}

// NewContribute creates a new Contribute transaction. A zero day defaults to today.
func NewContribute(day Date, name string, account Account, units int64, amount, fees Money) Contribute {
	return Contribute{newBase(day, name, account, units, amount, fees)}
}

func (t Contribute) What() Kind     { return KindContribute }
func (t Contribute) Record() Record { return t.record(KindContribute, t.costTotal()) }

// Validate checks that the subject is "cash" and the amount is not negative.
func (t Contribute) Validate(l *Ledger) error {
	if t.Name != CashSubject {
		return InvalidSubjectError{Kind: KindContribute, Name: t.Name, Want: CashSubject}
	}
	if t.Amount.IsNegative() {
		return InvalidAmountError{Kind: KindContribute, Amount: t.Amount}
	}
	return nil
}

func (t Contribute) apply(l *Ledger) {}

// --- ContributionLimit ---

// ContributionLimit records an increase of allowed contribution room. It has
// no ledger effect; only the log records it.
type ContributionLimit struct {
	baseTx
}

// NewContributionLimit creates a new ContributionLimit transaction. A zero
// day defaults to today.
func NewContributionLimit(day Date, name string, account Account, units int64, amount, fees Money) ContributionLimit {
	return ContributionLimit{newBase(day, name, account, units, amount, fees)}
}

func (t ContributionLimit) What() Kind     { return KindContributionLimit }
func (t ContributionLimit) Record() Record { return t.record(KindContributionLimit, t.costTotal()) }

// Validate checks that the subject is "any" and the amount is not negative.
func (t ContributionLimit) Validate(l *Ledger) error {
	if t.Name != AnySubject {
		return InvalidSubjectError{Kind: KindContributionLimit, Name: t.Name, Want: AnySubject}
	}
	if t.Amount.IsNegative() {
		return InvalidAmountError{Kind: KindContributionLimit, Amount: t.Amount}
	}
	return nil
}

func (t ContributionLimit) apply(l *Ledger) {}

// --- Dividend ---

// Dividend records a realized income payment. If the per-unit rate differs
// from the one stored in the ledger, the stored rate is updated.
type Dividend struct {
	baseTx
}

// NewDividend creates a new Dividend transaction. A zero day defaults to today.
func NewDividend(day Date, name string, account Account, units int64, amount, fees Money) Dividend {
	return Dividend{newBase(day, name, account, units, amount, fees)}
}

func (t Dividend) What() Kind { return KindDividend }

// Record returns the log record; dividend fees reduce the total. The
// per-unit rate is persisted unrounded, it feeds the stored income rate.
func (t Dividend) Record() Record {
	rec := t.record(KindDividend, t.Amount.MulUnits(t.Units).Sub(t.Fees))
	rec.UnitAmount = t.Amount
	return rec
}

// Validate checks that the asset exists in the ledger.
func (t Dividend) Validate(l *Ledger) error {
	if !l.Has(t.Name) {
		return UnknownAssetError{Name: t.Name}
	}
	return nil
}

func (t Dividend) apply(l *Ledger) {
	a := l.Asset(t.Name)
	if !a.IncomePerUnitPeriod.Equal(t.Amount) {
		a.IncomePerUnitPeriod = t.Amount
	}
}

// --- Withdraw ---

// Withdraw records a cash withdrawal from an account. It has no ledger
// effect; only the log records it. Fees are not added to the total.
type Withdraw struct {
	baseTx
}

// NewWithdraw creates a new Withdraw transaction. A zero day defaults to today.
func NewWithdraw(day Date, name string, account Account, units int64, amount, fees Money) Withdraw {
	return Withdraw{newBase(day, name, account, units, amount, fees)}
}

func (t Withdraw) What() Kind     { return KindWithdraw }
func (t Withdraw) Record() Record { return t.record(KindWithdraw, t.Amount.MulUnits(t.Units)) }

// Validate checks that the subject is "cash" and the amount is positive.
func (t Withdraw) Validate(l *Ledger) error {
	if t.Name != CashSubject {
		return InvalidSubjectError{Kind: KindWithdraw, Name: t.Name, Want: CashSubject}
	}
	if !t.Amount.IsPositive() {
		return InvalidAmountError{Kind: KindWithdraw, Amount: t.Amount}
	}
	return nil
}

func (t Withdraw) apply(l *Ledger) {}
