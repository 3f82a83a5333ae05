package clerk

import "fmt"

// Domain errors reported by transaction validation. Each one carries the
// offending values so the command boundary can show the user exactly what
// was rejected. None of them is fatal: a failed transaction leaves the
// ledger and the log untouched.

// UnknownAssetError reports a transaction referencing an asset absent from
// the ledger.
type UnknownAssetError struct {
	Name string
}

func (e UnknownAssetError) Error() string {
	return fmt.Sprintf("%q does not exist: create the asset before executing transactions", e.Name)
}

// InsufficientUnitsError reports a sell or transfer exceeding the units held
// in the source account.
type InsufficientUnitsError struct {
	Name      string
	Account   Account
	Requested int64
	Available int64
}

func (e InsufficientUnitsError) Error() string {
	return fmt.Sprintf("cannot move %d units of %q: account %q holds only %d",
		e.Requested, e.Name, e.Account, e.Available)
}

// MissingTransferTargetError reports a transfer without a usable destination
// account: either none was supplied or it equals the source.
type MissingTransferTargetError struct {
	Source Account
}

func (e MissingTransferTargetError) Error() string {
	return fmt.Sprintf("transfer from %q requires a distinct target account", e.Source)
}

// InvalidSubjectError reports a cash event used with the wrong subject name:
// contributions and withdrawals are for "cash", contribution limits for "any".
type InvalidSubjectError struct {
	Kind Kind
	Name string
	Want string
}

func (e InvalidSubjectError) Error() string {
	return fmt.Sprintf("%s transaction must name %q, got %q", e.Kind, e.Want, e.Name)
}

// InvalidAmountError reports a negative contribution or a non-positive
// withdrawal amount.
type InvalidAmountError struct {
	Kind   Kind
	Amount Money
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("%s amount %s is not allowed", e.Kind, e.Amount.Display())
}
