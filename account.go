package clerk

import "fmt"

// Account identifies one of the fixed tax/registration buckets an asset's
// units are held in.
type Account int

// The zero Account is not a valid kind; it marks an absent transfer target.
const (
	// SDRSP is a self-directed registered retirement savings plan account.
	SDRSP Account = iota + 1
	// LockedSDRSP is a locked-in self-directed RRSP account.
	LockedSDRSP
	// Margin is a non-registered margin account.
	Margin
	// TFSA is a tax-free savings account.
	TFSA
	// RESP is a registered education savings plan account.
	RESP
)

func (a Account) String() string {
	switch a {
	case SDRSP:
		return "sdrsp"
	case LockedSDRSP:
		return "locked_sdrsp"
	case Margin:
		return "margin"
	case TFSA:
		return "tfsa"
	case RESP:
		return "resp"
	default:
		return "unknown"
	}
}

// ParseAccount parses a string into an Account.
func ParseAccount(s string) (Account, error) {
	switch s {
	case "sdrsp":
		return SDRSP, nil
	case "locked_sdrsp":
		return LockedSDRSP, nil
	case "margin":
		return Margin, nil
	case "tfsa":
		return TFSA, nil
	case "resp":
		return RESP, nil
	default:
		return 0, fmt.Errorf("unknown account kind: %q", s)
	}
}

// AllAccounts returns the account kinds in their canonical column order.
func AllAccounts() []Account {
	return []Account{SDRSP, LockedSDRSP, Margin, TFSA, RESP}
}

// IsRRSP reports whether the account belongs to the RRSP-registered group.
func (a Account) IsRRSP() bool { return a == SDRSP || a == LockedSDRSP }

// IsNonRRSP reports whether the account belongs to the non-registered group
// used in income reports (margin and tfsa; resp stands alone).
func (a Account) IsNonRRSP() bool { return a == Margin || a == TFSA }
