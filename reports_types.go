package clerk

// Report row labels. The projection and realized-income reports use
// different total labels; both are preserved verbatim from the historical
// data files, as is the zeroed yearly-total cell of the yearly row (see
// the reports documentation).
const (
	TotalMonthlyLabel       = "TOTAL MONTHLY"
	TotalYearlyLabel        = "TOTAL YEARLY"
	ActualTotalMonthlyLabel = "TOTAL_MONTHLY"
	ActualTotalYearlyLabel  = "TOTAL_YEARLY"
	ScheduleTotalLabel      = "TOTAL"
	ContributionRoomLabel   = "cont_room"
)

// IncomeRow is one row of a monthly income report: an asset (or totals
// pseudo-asset) with its income per account and derived totals.
type IncomeRow struct {
	Name         string
	Accounts     [6]Money // income per Account, indexed by Account (index 0 unused)
	TotalRRSP    Money    // sdrsp + locked_sdrsp
	TotalNonRRSP Money    // margin + tfsa
	MonthlyTotal Money    // resp + total_rrsp + total_nonrrsp
	YearlyTotal  Money    // monthly_total x 12
}

// MonthlyIncomeReport is the projected or realized monthly income by asset
// and account, with the trailing monthly and yearly totals rows.
type MonthlyIncomeReport struct {
	Rows []IncomeRow
}

// AssetRows returns the per-asset rows, excluding the two totals rows.
func (r *MonthlyIncomeReport) AssetRows() []IncomeRow {
	if len(r.Rows) < 2 {
		return nil
	}
	return r.Rows[:len(r.Rows)-2]
}

// TotalMonthly returns the monthly totals row.
func (r *MonthlyIncomeReport) TotalMonthly() IncomeRow { return r.Rows[len(r.Rows)-2] }

// TotalYearly returns the yearly totals row.
func (r *MonthlyIncomeReport) TotalYearly() IncomeRow { return r.Rows[len(r.Rows)-1] }

// ScheduleRow is one row of the monthly income schedule: for each calendar
// month, the income paid to the RRSP-registered group and to the
// non-registered group. The resp account is excluded from the schedule.
type ScheduleRow struct {
	Name    string
	RRSP    [13]Money // indexed by calendar month 1-12 (index 0 unused)
	NonRRSP [13]Money
}

// ScheduleReport is the projected payment schedule over a calendar year,
// with a trailing row of column totals.
type ScheduleReport struct {
	Rows []ScheduleRow
}

// SummaryRow is one row of the contribution-room summary: a transaction
// type with its record count and summed total.
type SummaryRow struct {
	Type  string
	Num   int
	Total Money
}

// ContributionSummary is the tfsa contribution accounting: per-type counts
// and sums over the filtered transaction log, with the synthetic cont_room
// row last.
type ContributionSummary struct {
	Rows []SummaryRow
}

// Room returns the computed remaining contribution room.
func (s *ContributionSummary) Room() Money {
	return s.Rows[len(s.Rows)-1].Total
}
