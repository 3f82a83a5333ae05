package clerk

import (
	"testing"
	"time"
)

// newTestLog builds a small log with a mixed history.
func newTestLog(t *testing.T) *TransactionLog {
	t.Helper()
	log := NewTransactionLog()
	log.Append(
		Record{Date: day(2024, time.January, 5), Type: KindBuy, Name: "TD", Account: SDRSP, Units: 100, UnitAmount: M(80), Total: M(8000)},
		Record{Date: day(2024, time.February, 1), Type: KindDividend, Name: "TD", Account: SDRSP, Units: 100, UnitAmount: M(0.25), Total: M(25)},
		Record{Date: day(2024, time.March, 1), Type: KindDividend, Name: "TD", Account: SDRSP, Units: 100, UnitAmount: M(0.27), Total: M(27)},
		Record{Date: day(2024, time.March, 1), Type: KindDividend, Name: "TD", Account: TFSA, Units: 50, UnitAmount: M(0.27), Total: M(13.5)},
		Record{Date: day(2024, time.March, 10), Type: KindTransfer, Name: "TD", Account: SDRSP, XferAccount: TFSA, Units: 10, Total: M(0)},
	)
	return log
}

func TestRecordsFilters(t *testing.T) {
	log := newTestLog(t)

	count := func(filters ...func(Record) bool) int {
		n := 0
		for range log.Records(filters...) {
			n++
		}
		return n
	}

	testCases := []struct {
		name   string
		filter func(Record) bool
		want   int
	}{
		{name: "accept all", filter: AcceptAll, want: 5},
		{name: "by type", filter: ByType(KindDividend), want: 3},
		{name: "by several types", filter: ByType(KindBuy, KindTransfer), want: 2},
		{name: "by account", filter: ByAccount(TFSA), want: 1},
		{name: "by transfer target", filter: ByTransferTarget(TFSA), want: 1},
		{name: "all of", filter: All(ByType(KindDividend), ByAccount(SDRSP)), want: 2},
		{name: "any of", filter: Any(ByType(KindBuy), ByAccount(TFSA)), want: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := count(tc.filter); got != tc.want {
				t.Errorf("count = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRecordsKeepInsertionOrder(t *testing.T) {
	log := newTestLog(t)
	prev := -1
	for i := range log.Records(AcceptAll) {
		if i <= prev {
			t.Fatalf("iteration out of order: %d after %d", i, prev)
		}
		prev = i
	}
}

func TestLastDividend(t *testing.T) {
	log := newTestLog(t)

	rec, ok := log.LastDividend("TD", SDRSP)
	if !ok {
		t.Fatal("LastDividend(TD, sdrsp) not found")
	}
	wantMoney(t, "Total", rec.Total, "27")

	if _, ok := log.LastDividend("TD", Margin); ok {
		t.Error("LastDividend(TD, margin) found, want none")
	}
	if _, ok := log.LastDividend("ENB", SDRSP); ok {
		t.Error("LastDividend(ENB, sdrsp) found, want none")
	}
}

func TestLastDividendSameDatePrefersLatest(t *testing.T) {
	log := NewTransactionLog()
	on := day(2024, time.March, 1)
	log.Append(
		Record{Date: on, Type: KindDividend, Name: "TD", Account: SDRSP, Total: M(25)},
		Record{Date: on, Type: KindDividend, Name: "TD", Account: SDRSP, Total: M(26)},
	)
	rec, ok := log.LastDividend("TD", SDRSP)
	if !ok {
		t.Fatal("LastDividend not found")
	}
	wantMoney(t, "Total", rec.Total, "26")
}
