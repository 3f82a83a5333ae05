package clerk

import (
	"testing"
	"time"
)

// newTestLedger creates a ledger with two assets covering both account
// groups and both payment frequencies used by the reports.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	enb := &Asset{
		Name: "ENB", Market: "tsx", Type: "stock", Subtype: "energy",
		IncomePerUnitPeriod: M(0.9),
		IncomeFreqMonths:    3,
		IncomeFirstMonth:    2,
		IncomeDayOfMonth:    15,
	}
	enb.SetUnits(LockedSDRSP, 10)
	enb.SetUnits(Margin, 40)

	td := &Asset{
		Name: "TD", Market: "tsx", Type: "stock", Subtype: "bank",
		IncomePerUnitPeriod: M(0.25),
		IncomeFreqMonths:    1,
		IncomeFirstMonth:    1,
		IncomeDayOfMonth:    28,
	}
	td.SetUnits(SDRSP, 100)
	td.SetUnits(TFSA, 50)

	l := NewLedger()
	l.Add(enb)
	l.Add(td)
	return l
}

// day is a shorthand for dates in tests.
func day(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

// wantMoney fails the test when got differs from the decimal string want.
func wantMoney(t *testing.T, label string, got Money, want string) {
	t.Helper()
	expected, err := ParseMoney(want)
	if err != nil {
		t.Fatalf("bad expectation %q: %v", want, err)
	}
	if !got.Equal(expected) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}
