package clerk

import "fmt"

// Dataset identifies one of the persisted tables.
type Dataset string

const (
	DatasetAssets                Dataset = "assets"
	DatasetTransactions          Dataset = "transactions"
	DatasetMonthlyIncome         Dataset = "monthly_income"
	DatasetMonthlyIncomeSchedule Dataset = "monthly_income_schedule"
	DatasetMonthlyIncomeActual   Dataset = "monthly_income_actual"
	DatasetTFSASummary           Dataset = "tfsa_summary"
)

// datasetDetails describes how a dataset is persisted.
type datasetDetails struct {
	filename    string
	columns     []string
	description string
}

var datasets = map[Dataset]datasetDetails{
	DatasetAssets: {
		filename: "assets.csv",
		columns: []string{"name", "market", "type", "subtype", "income_per_unit_period",
			"sdrsp", "locked_sdrsp", "margin", "tfsa", "resp",
			"income_freq_months", "income_first_month", "income_day_of_month"},
		description: "ledger of owned financial instruments",
	},
	DatasetTransactions: {
		filename:    "transactions.csv",
		columns:     []string{"date", "type", "name", "account", "xfer_account", "units", "unit_amount", "fees", "total"},
		description: "record of all asset transactions",
	},
	DatasetMonthlyIncome: {
		filename:    "income_monthly.csv",
		columns:     incomeColumns(),
		description: "projected monthly income by account, including overall & RRSP and non-registered totals",
	},
	DatasetMonthlyIncomeSchedule: {
		filename:    "income_monthly_sched.csv",
		columns:     scheduleColumns(),
		description: "projected monthly income schedule",
	},
	DatasetMonthlyIncomeActual: {
		filename:    "income_monthly_actual.csv",
		columns:     incomeColumns(),
		description: "actual monthly income by account, including overall & RRSP and non-registered totals",
	},
	DatasetTFSASummary: {
		filename:    "tfsa_summary.csv",
		columns:     []string{"type", "num", "total"},
		description: "summarization of tfsa transactions",
	},
}

func incomeColumns() []string {
	return []string{"name", "sdrsp", "locked_sdrsp", "margin", "tfsa", "resp",
		"total_rrsp", "total_nonrrsp", "monthly_total", "yearly_total"}
}

func scheduleColumns() []string {
	cols := []string{"name"}
	for _, m := range []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"} {
		cols = append(cols, m+"_rrsp", m+"_nonrrsp")
	}
	return cols
}

// ParseDataset parses a string into a Dataset.
func ParseDataset(s string) (Dataset, error) {
	if _, ok := datasets[Dataset(s)]; !ok {
		return "", fmt.Errorf("unknown dataset: %q", s)
	}
	return Dataset(s), nil
}

// AllDatasets returns every dataset in a stable order.
func AllDatasets() []Dataset {
	return []Dataset{DatasetAssets, DatasetMonthlyIncome, DatasetMonthlyIncomeSchedule,
		DatasetMonthlyIncomeActual, DatasetTFSASummary, DatasetTransactions}
}

// Filename returns the canonical file name holding the dataset.
func (d Dataset) Filename() string { return datasets[d].filename }

// Columns returns the dataset's column names in file order.
func (d Dataset) Columns() []string { return datasets[d].columns }

// Description returns a one-line description of the dataset.
func (d Dataset) Description() string { return datasets[d].description }
