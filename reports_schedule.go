package clerk

// MonthlyIncomeSchedule computes the projected payment schedule: for each
// asset, a payment falls in calendar month m (1-12) exactly when
//
//	m >= income_first_month && (m - income_first_month) % income_freq_months == 0
//
// In a paying month the RRSP-group column is (sdrsp+locked_sdrsp) units
// times the per-unit rate and the non-registered column is (margin+tfsa)
// units times the rate; resp holdings are excluded from the schedule. A
// trailing TOTAL row sums every column over the asset rows.
func MonthlyIncomeSchedule(l *Ledger) *ScheduleReport {
	report := &ScheduleReport{}
	total := ScheduleRow{Name: ScheduleTotalLabel}
	for a := range l.Assets() {
		row := ScheduleRow{Name: a.Name}
		rrsp := a.IncomePerUnitPeriod.MulUnits(a.Units(SDRSP) + a.Units(LockedSDRSP))
		nonrrsp := a.IncomePerUnitPeriod.MulUnits(a.Units(Margin) + a.Units(TFSA))
		for month := 1; month <= 12; month++ {
			if !paysInMonth(month, a.IncomeFirstMonth, a.IncomeFreqMonths) {
				continue
			}
			row.RRSP[month] = rrsp
			row.NonRRSP[month] = nonrrsp
			total.RRSP[month] = total.RRSP[month].Add(rrsp)
			total.NonRRSP[month] = total.NonRRSP[month].Add(nonrrsp)
		}
		report.Rows = append(report.Rows, row)
	}
	report.Rows = append(report.Rows, total)
	return report
}

// paysInMonth reports whether a payment falls in the given calendar month.
func paysInMonth(month, firstMonth, freqMonths int) bool {
	return month >= firstMonth && (month-firstMonth)%freqMonths == 0
}
