package clerk

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RowFilter is a small, explicit predicate over the columns of a persisted
// table: a conjunction of field/operator/value clauses. It replaces the
// free-form row filter expressions of earlier tools, which evaluated
// arbitrary caller-supplied code.
type RowFilter struct {
	clauses []filterClause
}

type filterClause struct {
	field string
	op    string
	value string
}

var filterOps = []string{"!=", ">=", "<=", "=", ">", "<"} // longest first

// ParseRowFilter parses a comma-separated conjunction of clauses, e.g.
//
//	name=TD,account!=margin,units>100
//
// Supported operators: = != < <= > >=. Comparison is numeric when both
// sides parse as decimals, lexical otherwise.
func ParseRowFilter(expr string) (*RowFilter, error) {
	f := &RowFilter{}
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return f, nil
	}
	for _, part := range strings.Split(expr, ",") {
		clause, err := parseClause(part)
		if err != nil {
			return nil, err
		}
		f.clauses = append(f.clauses, clause)
	}
	return f, nil
}

func parseClause(part string) (filterClause, error) {
	for _, op := range filterOps {
		if i := strings.Index(part, op); i > 0 {
			return filterClause{
				field: strings.TrimSpace(part[:i]),
				op:    op,
				value: strings.TrimSpace(part[i+len(op):]),
			}, nil
		}
	}
	return filterClause{}, fmt.Errorf("invalid filter clause %q, want field<op>value", part)
}

// Match reports whether a row satisfies every clause. Fields are resolved
// against the given column names; an unknown field is an error.
func (f *RowFilter) Match(columns, row []string) (bool, error) {
	for _, clause := range f.clauses {
		i := indexOf(columns, clause.field)
		if i < 0 {
			return false, fmt.Errorf("unknown field %q, have %s", clause.field, strings.Join(columns, ", "))
		}
		if !clause.eval(row[i]) {
			return false, nil
		}
	}
	return true, nil
}

func (c filterClause) eval(cell string) bool {
	cmp := compareCells(cell, c.value)
	switch c.op {
	case "=":
		return cmp == 0
	case "!=":
		return cmp != 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	default:
		return false
	}
}

// compareCells compares numerically when both values parse as decimals,
// lexically otherwise.
func compareCells(a, b string) int {
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA == nil && errB == nil {
		return da.Cmp(db)
	}
	return strings.Compare(a, b)
}

func indexOf(columns []string, field string) int {
	for i, col := range columns {
		if col == field {
			return i
		}
	}
	return -1
}
