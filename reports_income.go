package clerk

// MonthlyIncome computes the projected monthly income report: for every
// asset and every account, monthly income is
//
//	units x income_per_unit_period / income_freq_months
//
// Rows carry the RRSP-group and non-registered-group subtotals, then the
// report gains a monthly totals row (column-wise sum over asset rows), a
// monthly_total and yearly_total per row, and finally a yearly totals row
// that is 12x the monthly totals row. The yearly row's own yearly_total
// cell is kept at zero, matching the historical data files.
func MonthlyIncome(l *Ledger) *MonthlyIncomeReport {
	report := &MonthlyIncomeReport{}
	for a := range l.Assets() {
		row := IncomeRow{Name: a.Name}
		for _, account := range AllAccounts() {
			row.Accounts[account] = a.IncomePerUnitPeriod.MulUnits(a.Units(account)).DivInt(a.IncomeFreqMonths)
		}
		row.TotalRRSP = row.Accounts[SDRSP].Add(row.Accounts[LockedSDRSP])
		row.TotalNonRRSP = row.Accounts[Margin].Add(row.Accounts[TFSA])
		report.Rows = append(report.Rows, row)
	}

	report.Rows = append(report.Rows, sumIncomeRows(TotalMonthlyLabel, report.Rows))

	for i := range report.Rows {
		row := &report.Rows[i]
		row.MonthlyTotal = row.Accounts[RESP].Add(row.TotalRRSP).Add(row.TotalNonRRSP)
		row.YearlyTotal = row.MonthlyTotal.MulInt(12)
	}

	report.Rows = append(report.Rows, yearlyRow(TotalYearlyLabel, report.Rows[len(report.Rows)-1]))
	return report
}

// MonthlyIncomeActual computes the realized monthly income report from the
// dividend history: for every asset and account with nonzero holdings, the
// most recent dividend record's total divided by the asset's payment
// frequency; zero otherwise. Totals rows follow the same construction as
// the projection report, underscored labels included.
func MonthlyIncomeActual(l *Ledger, log *TransactionLog) *MonthlyIncomeReport {
	report := &MonthlyIncomeReport{}
	for a := range l.Assets() {
		row := IncomeRow{Name: a.Name}
		for _, account := range AllAccounts() {
			if a.Units(account) <= 0 {
				continue
			}
			div, ok := log.LastDividend(a.Name, account)
			if !ok {
				continue
			}
			row.Accounts[account] = div.Total.DivInt(a.IncomeFreqMonths)
		}
		row.TotalRRSP = row.Accounts[SDRSP].Add(row.Accounts[LockedSDRSP])
		row.TotalNonRRSP = row.Accounts[Margin].Add(row.Accounts[TFSA])
		row.MonthlyTotal = row.TotalRRSP.Add(row.TotalNonRRSP).Add(row.Accounts[RESP])
		row.YearlyTotal = row.MonthlyTotal.MulInt(12)
		report.Rows = append(report.Rows, row)
	}

	monthly := sumIncomeRows(ActualTotalMonthlyLabel, report.Rows)
	report.Rows = append(report.Rows, monthly)
	report.Rows = append(report.Rows, yearlyRow(ActualTotalYearlyLabel, monthly))
	return report
}

// sumIncomeRows builds the column-wise sum of the given rows. Decimal
// arithmetic keeps the sums exact regardless of row order.
func sumIncomeRows(label string, rows []IncomeRow) IncomeRow {
	total := IncomeRow{Name: label}
	for _, row := range rows {
		for _, account := range AllAccounts() {
			total.Accounts[account] = total.Accounts[account].Add(row.Accounts[account])
		}
		total.TotalRRSP = total.TotalRRSP.Add(row.TotalRRSP)
		total.TotalNonRRSP = total.TotalNonRRSP.Add(row.TotalNonRRSP)
		total.MonthlyTotal = total.MonthlyTotal.Add(row.MonthlyTotal)
		total.YearlyTotal = total.YearlyTotal.Add(row.YearlyTotal)
	}
	return total
}

// yearlyRow builds the yearly totals row as 12x the monthly totals row,
// its own yearly_total cell left at zero.
func yearlyRow(label string, monthly IncomeRow) IncomeRow {
	yearly := IncomeRow{Name: label}
	for _, account := range AllAccounts() {
		yearly.Accounts[account] = monthly.Accounts[account].MulInt(12)
	}
	yearly.TotalRRSP = monthly.TotalRRSP.MulInt(12)
	yearly.TotalNonRRSP = monthly.TotalNonRRSP.MulInt(12)
	yearly.MonthlyTotal = monthly.MonthlyTotal.MulInt(12)
	// YearlyTotal stays zero.
	return yearly
}
