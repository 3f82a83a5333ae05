package clerk

import "iter"

// Record is one immutable entry in the transaction log. Total is always
// derived by the transaction that produced the record, never supplied.
type Record struct {
	Date        Date
	Type        Kind
	Name        string  // asset name, "cash" or "any"
	Account     Account // account the transaction was executed in
	XferAccount Account // transfer target; zero for everything but xfer
	Units       int64
	UnitAmount  Money
	Fees        Money
	Total       Money
}

// Equal reports whether two records are identical.
func (r Record) Equal(o Record) bool {
	return r.Date == o.Date &&
		r.Type == o.Type &&
		r.Name == o.Name &&
		r.Account == o.Account &&
		r.XferAccount == o.XferAccount &&
		r.Units == o.Units &&
		r.UnitAmount.Equal(o.UnitAmount) &&
		r.Fees.Equal(o.Fees) &&
		r.Total.Equal(o.Total)
}

// TransactionLog is the append-only history of all recorded transactions.
// Records keep their insertion order, which is not necessarily date order.
type TransactionLog struct {
	records []Record
}

// NewTransactionLog creates an empty transaction log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{records: make([]Record, 0)}
}

// Append adds a record to the end of the log. Existing records are never
// mutated or removed.
func (g *TransactionLog) Append(recs ...Record) {
	g.records = append(g.records, recs...)
}

// Len returns the number of records in the log.
func (g *TransactionLog) Len() int { return len(g.records) }

// Records returns an iterator over records matching all the given filters,
// in insertion order.
func (g *TransactionLog) Records(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, rec := range g.records {
			accept := true
			for _, filter := range filters {
				if !filter(rec) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// LastDividend returns the most recent dividend record for (asset, account),
// by date; records on the same date resolve to the later appended one. The
// boolean is false when no dividend history exists for the pair.
func (g *TransactionLog) LastDividend(name string, account Account) (Record, bool) {
	var best Record
	var found bool
	for _, rec := range g.Records(ByType(KindDividend), ByName(name), ByAccount(account)) {
		if !found || !rec.Date.Before(best.Date) {
			best = rec
			found = true
		}
	}
	return best, found
}

// AcceptAll is a predicate that accepts every record.
func AcceptAll(Record) bool { return true }

// ByType returns a predicate that filters records by transaction kind.
func ByType(kinds ...Kind) func(Record) bool {
	return func(rec Record) bool {
		for _, k := range kinds {
			if rec.Type == k {
				return true
			}
		}
		return false
	}
}

// ByName returns a predicate that filters records by subject name.
func ByName(name string) func(Record) bool {
	return func(rec Record) bool { return rec.Name == name }
}

// ByAccount returns a predicate that filters records by executing account.
func ByAccount(account Account) func(Record) bool {
	return func(rec Record) bool { return rec.Account == account }
}

// ByTransferTarget returns a predicate that filters records by transfer
// target account.
func ByTransferTarget(account Account) func(Record) bool {
	return func(rec Record) bool { return rec.XferAccount == account }
}

// Any combines predicates with a logical OR.
func Any(filters ...func(Record) bool) func(Record) bool {
	return func(rec Record) bool {
		for _, filter := range filters {
			if filter(rec) {
				return true
			}
		}
		return false
	}
}

// All combines predicates with a logical AND.
func All(filters ...func(Record) bool) func(Record) bool {
	return func(rec Record) bool {
		for _, filter := range filters {
			if !filter(rec) {
				return false
			}
		}
		return true
	}
}
