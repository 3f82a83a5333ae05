package clerk

import "fmt"

// Apply validates a transaction against the ledger and, only if every
// precondition holds, performs its ledger effect and appends its record to
// the log. On any validation failure neither the ledger nor the log is
// touched, and the returned error identifies the offending value.
func Apply(l *Ledger, log *TransactionLog, tx Transaction) (Record, error) {
	if err := tx.Validate(l); err != nil {
		return Record{}, fmt.Errorf("invalid %s transaction on %s: %w", tx.What(), tx.When(), err)
	}
	tx.apply(l)
	rec := tx.Record()
	log.Append(rec)
	return rec, nil
}
