package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/clerk"
)

func newReportLedger(t *testing.T) *clerk.Ledger {
	t.Helper()
	td := &clerk.Asset{
		Name: "TD", Market: "tsx", Type: "stock", Subtype: "bank",
		IncomePerUnitPeriod: clerk.M(0.25),
		IncomeFreqMonths:    1,
		IncomeFirstMonth:    1,
		IncomeDayOfMonth:    28,
	}
	td.SetUnits(clerk.SDRSP, 100)
	l := clerk.NewLedger()
	l.Add(td)
	return l
}

func TestMonthlyIncomeMarkdown(t *testing.T) {
	report := clerk.MonthlyIncome(newReportLedger(t))
	got := MonthlyIncomeMarkdown("Monthly Income", report)

	for _, want := range []string{
		"# Monthly Income",
		"| TD ",
		"$25.00",
		clerk.TotalMonthlyLabel,
		clerk.TotalYearlyLabel,
		"$300.00", // yearly sdrsp column
	} {
		if !strings.Contains(got, want) {
			t.Errorf("MonthlyIncomeMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestScheduleMarkdown(t *testing.T) {
	report := clerk.MonthlyIncomeSchedule(newReportLedger(t))
	got := ScheduleMarkdown(report)

	for _, want := range []string{"RRSP", "Jan", "Dec", "TOTAL", "$25.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("ScheduleMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestContributionSummaryMarkdown(t *testing.T) {
	log := clerk.NewTransactionLog()
	log.Append(clerk.Record{
		Date: clerk.NewDate(2024, time.January, 2), Type: clerk.KindContributionLimit,
		Name: clerk.AnySubject, Account: clerk.TFSA, Total: clerk.M(6000),
	})
	got := ContributionSummaryMarkdown(clerk.ContributionRoom(log))

	for _, want := range []string{
		"# TFSA Summary",
		"Total Contribution Room = $6,000.00",
		"cont_limit",
		"cont_room",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ContributionSummaryMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestRecord(t *testing.T) {
	on := clerk.NewDate(2024, time.March, 8)
	testCases := []struct {
		name string
		rec  clerk.Record
		want string
	}{
		{
			name: "buy",
			rec:  clerk.Record{Date: on, Type: clerk.KindBuy, Name: "TD", Account: clerk.SDRSP, Units: 10, Total: clerk.M(812.49)},
			want: "2024-03-08: bought 10 units of TD in sdrsp for $812.49",
		},
		{
			name: "xfer",
			rec:  clerk.Record{Date: on, Type: clerk.KindTransfer, Name: "TD", Account: clerk.SDRSP, XferAccount: clerk.TFSA, Units: 5},
			want: "2024-03-08: transferred 5 units of TD from sdrsp to tfsa",
		},
		{
			name: "withdraw",
			rec:  clerk.Record{Date: on, Type: clerk.KindWithdraw, Name: clerk.CashSubject, Account: clerk.TFSA, Total: clerk.M(200)},
			want: "2024-03-08: withdrew $200.00 from tfsa",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Record(tc.rec); got != tc.want {
				t.Errorf("Record() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDatasetMarkdown(t *testing.T) {
	got := DatasetMarkdown("assets", []string{"name", "units"}, [][]string{{"TD", "100"}})
	for _, want := range []string{"# assets", "| TD ", "[1 rows x 2 columns]"} {
		if !strings.Contains(got, want) {
			t.Errorf("DatasetMarkdown() misses %q in:\n%s", want, got)
		}
	}
}
