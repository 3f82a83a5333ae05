package clerk

import (
	"iter"
	"maps"
	"slices"
)

// Ledger is the current holdings table: every asset with its per-account
// unit counts and income metadata.
//
// The Ledger is a pure keyed store. It performs no business validation;
// every rule about what may mutate it lives with the transaction types.
type Ledger struct {
	assets map[string]*Asset
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{assets: make(map[string]*Asset)}
}

// Add registers an asset, replacing any previous asset with the same name.
func (l *Ledger) Add(a *Asset) {
	l.assets[a.Name] = a
}

// Has reports whether an asset with this name exists.
func (l *Ledger) Has(name string) bool {
	_, ok := l.assets[name]
	return ok
}

// Asset returns the asset with this name, or nil if unknown.
func (l *Ledger) Asset(name string) *Asset {
	return l.assets[name]
}

// Len returns the number of assets in the ledger.
func (l *Ledger) Len() int { return len(l.assets) }

// Balance returns the unit count held for (asset, account).
func (l *Ledger) Balance(name string, account Account) (int64, error) {
	a, ok := l.assets[name]
	if !ok {
		return 0, UnknownAssetError{Name: name}
	}
	return a.Units(account), nil
}

// SetBalance overwrites the unit count held for (asset, account). The caller
// must have validated non-negativity.
func (l *Ledger) SetBalance(name string, account Account, units int64) error {
	a, ok := l.assets[name]
	if !ok {
		return UnknownAssetError{Name: name}
	}
	a.SetUnits(account, units)
	return nil
}

// IncomeRate returns the asset's income paid per unit per payment event.
func (l *Ledger) IncomeRate(name string) (Money, error) {
	a, ok := l.assets[name]
	if !ok {
		return Money{}, UnknownAssetError{Name: name}
	}
	return a.IncomePerUnitPeriod, nil
}

// SetIncomeRate overwrites the asset's income paid per unit per payment event.
func (l *Ledger) SetIncomeRate(name string, rate Money) error {
	a, ok := l.assets[name]
	if !ok {
		return UnknownAssetError{Name: name}
	}
	a.IncomePerUnitPeriod = rate
	return nil
}

// Assets iterates over the assets in name order.
func (l *Ledger) Assets() iter.Seq[*Asset] {
	return func(yield func(*Asset) bool) {
		names := slices.Collect(maps.Keys(l.assets))
		slices.Sort(names)
		for _, name := range names {
			if !yield(l.assets[name]) {
				return
			}
		}
	}
}
