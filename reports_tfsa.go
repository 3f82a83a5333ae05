package clerk

import (
	"slices"
	"strings"
)

// ContributionRoom computes the tfsa contribution-room summary. The log is
// filtered to contributions, contribution limits and withdrawals executed
// in the tfsa account, plus transfers whose target account is tfsa; those
// transfers are relabeled xfer_in. Records are grouped by type with a count
// and a summed total, and a synthetic cont_room row is appended holding
//
//	cont_limit + withdraw - cont - xfer_in
//
// where each term defaults to zero when the type is absent.
func ContributionRoom(log *TransactionLog) *ContributionSummary {
	inTFSA := All(ByType(KindContribute, KindContributionLimit, KindWithdraw), ByAccount(TFSA))
	intoTFSA := ByTransferTarget(TFSA)

	groups := make(map[string]*SummaryRow)
	for _, rec := range log.Records(Any(inTFSA, intoTFSA)) {
		label := rec.Type.String()
		if rec.Type == KindTransfer {
			label = KindTransferIn.String()
		}
		row, ok := groups[label]
		if !ok {
			row = &SummaryRow{Type: label}
			groups[label] = row
		}
		row.Num++
		row.Total = row.Total.Add(rec.Total)
	}

	summary := &ContributionSummary{}
	for _, label := range sortedKeys(groups) {
		summary.Rows = append(summary.Rows, *groups[label])
	}

	room := sumOf(groups, KindContributionLimit).
		Add(sumOf(groups, KindWithdraw)).
		Sub(sumOf(groups, KindContribute)).
		Sub(sumOf(groups, KindTransferIn))
	summary.Rows = append(summary.Rows, SummaryRow{Type: ContributionRoomLabel, Num: 1, Total: room})
	return summary
}

func sumOf(groups map[string]*SummaryRow, kind Kind) Money {
	if row, ok := groups[kind.String()]; ok {
		return row.Total
	}
	return Money{}
}

func sortedKeys(groups map[string]*SummaryRow) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, strings.Compare)
	return keys
}
