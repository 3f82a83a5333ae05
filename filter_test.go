package clerk

import "testing"

func TestRowFilterMatch(t *testing.T) {
	columns := []string{"name", "account", "units"}
	row := []string{"TD", "sdrsp", "100"}

	testCases := []struct {
		expr string
		want bool
	}{
		{expr: "", want: true},
		{expr: "name=TD", want: true},
		{expr: "name=ENB", want: false},
		{expr: "name!=ENB", want: true},
		{expr: "units>99", want: true},
		{expr: "units>100", want: false},
		{expr: "units>=100", want: true},
		{expr: "units<=100", want: true},
		{expr: "units<20", want: false}, // numeric, not lexical
		{expr: "name>SU", want: true},   // lexical when not numeric
		{expr: "name=TD,units>50", want: true},
		{expr: "name=TD,units>500", want: false},
		{expr: " name = TD , account != margin ", want: true},
	}
	for _, tc := range testCases {
		filter, err := ParseRowFilter(tc.expr)
		if err != nil {
			t.Errorf("ParseRowFilter(%q) failed: %v", tc.expr, err)
			continue
		}
		got, err := filter.Match(columns, row)
		if err != nil {
			t.Errorf("Match(%q) failed: %v", tc.expr, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestRowFilterErrors(t *testing.T) {
	if _, err := ParseRowFilter("no operator"); err == nil {
		t.Error("ParseRowFilter without operator succeeded, want error")
	}
	if _, err := ParseRowFilter("=value"); err == nil {
		t.Error("ParseRowFilter without field succeeded, want error")
	}

	filter, err := ParseRowFilter("ghost=1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := filter.Match([]string{"name"}, []string{"TD"}); err == nil {
		t.Error("Match with unknown field succeeded, want error")
	}
}
