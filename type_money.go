package clerk

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the ledger's single bookkeeping
// currency. Arithmetic is exact; nothing is rounded until a transaction
// total is committed to the log.
type Money struct {
	value decimal.Decimal
}

// Currency is the bookkeeping currency, used for display formatting only.
const Currency = money.CAD

// M creates a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// ParseMoney parses the plain decimal representation used in the data files.
func ParseMoney(s string) (Money, error) {
	if s == "" {
		return Money{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// String returns the plain decimal representation, the one persisted in the
// data files.
func (m Money) String() string { return m.value.String() }

// currency returns the display currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, Currency).Currency()
}

// Display returns the human-readable representation, e.g. "$1,234.00".
func (m Money) Display() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulUnits scales a per-unit amount by a unit count.
func (m Money) MulUnits(n int64) Money { return Money{value: m.value.Mul(decimal.NewFromInt(n))} }

// MulInt scales the amount by an integer factor.
func (m Money) MulInt(n int) Money { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }

// DivInt divides the amount by an integer divisor.
func (m Money) DivInt(n int) Money { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }

// Round2 rounds to the currency's two decimal places. Committed transaction
// totals are always rounded.
func (m Money) Round2() Money { return Money{value: m.value.Round(2)} }

// MarshalJSON implements the json.Marshaler interface for Money.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.value = d
	return nil
}
