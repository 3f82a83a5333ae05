package clerk

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// This file contains the CSV codecs for every persisted table. The files
// stay plain CSV so they remain human-readable, diffable and easy to back
// up; the Store decides where they live and snapshots every write.

// EncodeAssets writes the ledger as the assets table, rows in name order.
func EncodeAssets(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DatasetAssets.Columns()); err != nil {
		return err
	}
	for a := range l.Assets() {
		row := []string{
			a.Name, a.Market, a.Type, a.Subtype,
			a.IncomePerUnitPeriod.String(),
			strconv.FormatInt(a.Units(SDRSP), 10),
			strconv.FormatInt(a.Units(LockedSDRSP), 10),
			strconv.FormatInt(a.Units(Margin), 10),
			strconv.FormatInt(a.Units(TFSA), 10),
			strconv.FormatInt(a.Units(RESP), 10),
			strconv.Itoa(a.IncomeFreqMonths),
			strconv.Itoa(a.IncomeFirstMonth),
			strconv.Itoa(a.IncomeDayOfMonth),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeAssets reads the assets table into a fresh ledger.
func DecodeAssets(r io.Reader) (*Ledger, error) {
	rows, err := readTable(r, DatasetAssets)
	if err != nil {
		return nil, err
	}
	l := NewLedger()
	for i, row := range rows {
		a := &Asset{Name: row[0], Market: row[1], Type: row[2], Subtype: row[3]}
		if a.IncomePerUnitPeriod, err = ParseMoney(row[4]); err != nil {
			return nil, rowError(DatasetAssets, i, err)
		}
		for j, account := range AllAccounts() {
			units, err := strconv.ParseInt(row[5+j], 10, 64)
			if err != nil {
				return nil, rowError(DatasetAssets, i, fmt.Errorf("invalid unit count %q: %w", row[5+j], err))
			}
			if units < 0 {
				return nil, rowError(DatasetAssets, i, fmt.Errorf("negative unit count %d in %s", units, account))
			}
			a.SetUnits(account, units)
		}
		if a.IncomeFreqMonths, err = strconv.Atoi(row[10]); err != nil {
			return nil, rowError(DatasetAssets, i, err)
		}
		if a.IncomeFreqMonths < 1 {
			return nil, rowError(DatasetAssets, i, fmt.Errorf("income_freq_months must be at least 1, got %d", a.IncomeFreqMonths))
		}
		if a.IncomeFirstMonth, err = strconv.Atoi(row[11]); err != nil {
			return nil, rowError(DatasetAssets, i, err)
		}
		if a.IncomeFirstMonth < 1 || a.IncomeFirstMonth > 12 {
			return nil, rowError(DatasetAssets, i, fmt.Errorf("income_first_month must be a month number 1-12, got %d", a.IncomeFirstMonth))
		}
		if a.IncomeDayOfMonth, err = strconv.Atoi(row[12]); err != nil {
			return nil, rowError(DatasetAssets, i, err)
		}
		if l.Has(a.Name) {
			return nil, rowError(DatasetAssets, i, fmt.Errorf("asset %q is already defined", a.Name))
		}
		l.Add(a)
	}
	return l, nil
}

// EncodeRecords writes the transaction log in insertion order.
func EncodeRecords(w io.Writer, log *TransactionLog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DatasetTransactions.Columns()); err != nil {
		return err
	}
	for _, rec := range log.Records(AcceptAll) {
		target := ""
		if rec.XferAccount != 0 {
			target = rec.XferAccount.String()
		}
		row := []string{
			rec.Date.String(),
			rec.Type.String(),
			rec.Name,
			rec.Account.String(),
			target,
			strconv.FormatInt(rec.Units, 10),
			rec.UnitAmount.String(),
			rec.Fees.String(),
			rec.Total.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeRecords reads the transactions table into a fresh log, preserving
// row order as insertion order.
func DecodeRecords(r io.Reader) (*TransactionLog, error) {
	rows, err := readTable(r, DatasetTransactions)
	if err != nil {
		return nil, err
	}
	log := NewTransactionLog()
	for i, row := range rows {
		var rec Record
		if rec.Date, err = ParseDate(row[0]); err != nil {
			return nil, rowError(DatasetTransactions, i, err)
		}
		if rec.Type, err = ParseKind(row[1]); err != nil {
			return nil, rowError(DatasetTransactions, i, err)
		}
		rec.Name = row[2]
		if rec.Account, err = ParseAccount(row[3]); err != nil {
			return nil, rowError(DatasetTransactions, i, err)
		}
		if row[4] != "" {
			if rec.XferAccount, err = ParseAccount(row[4]); err != nil {
				return nil, rowError(DatasetTransactions, i, err)
			}
		}
		if rec.Units, err = strconv.ParseInt(row[5], 10, 64); err != nil {
			return nil, rowError(DatasetTransactions, i, fmt.Errorf("invalid unit count %q: %w", row[5], err))
		}
		if rec.UnitAmount, err = ParseMoney(row[6]); err != nil {
			return nil, rowError(DatasetTransactions, i, err)
		}
		if rec.Fees, err = ParseMoney(row[7]); err != nil {
			return nil, rowError(DatasetTransactions, i, err)
		}
		if rec.Total, err = ParseMoney(row[8]); err != nil {
			return nil, rowError(DatasetTransactions, i, err)
		}
		log.Append(rec)
	}
	return log, nil
}

// EncodeMonthlyIncome writes a monthly income report (projected or actual).
func EncodeMonthlyIncome(w io.Writer, report *MonthlyIncomeReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(incomeColumns()); err != nil {
		return err
	}
	for _, row := range report.Rows {
		out := []string{row.Name}
		for _, account := range AllAccounts() {
			out = append(out, row.Accounts[account].String())
		}
		out = append(out, row.TotalRRSP.String(), row.TotalNonRRSP.String(),
			row.MonthlyTotal.String(), row.YearlyTotal.String())
		if err := cw.Write(out); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeSchedule writes the monthly income schedule report.
func EncodeSchedule(w io.Writer, report *ScheduleReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scheduleColumns()); err != nil {
		return err
	}
	for _, row := range report.Rows {
		out := []string{row.Name}
		for month := 1; month <= 12; month++ {
			out = append(out, row.RRSP[month].String(), row.NonRRSP[month].String())
		}
		if err := cw.Write(out); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeContributionSummary writes the tfsa summary report.
func EncodeContributionSummary(w io.Writer, summary *ContributionSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DatasetTFSASummary.Columns()); err != nil {
		return err
	}
	for _, row := range summary.Rows {
		out := []string{row.Type, strconv.Itoa(row.Num), row.Total.String()}
		if err := cw.Write(out); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readTable reads all CSV rows of a dataset, checks the header against the
// dataset's schema, and returns the data rows.
func readTable(r io.Reader, ds Dataset) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ds.Columns())
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read %s table: %w", ds, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s table is empty, expected a header row", ds)
	}
	for i, col := range ds.Columns() {
		if rows[0][i] != col {
			return nil, fmt.Errorf("%s table column %d is %q, want %q", ds, i, rows[0][i], col)
		}
	}
	return rows[1:], nil
}

func rowError(ds Dataset, i int, err error) error {
	// i is zero-based over data rows; the header is line 1.
	return fmt.Errorf("%s table line %d: %w", ds, i+2, err)
}
