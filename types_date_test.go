package clerk

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-03-28", want: day(2024, time.March, 28)},
		{in: "2024-3-8", want: day(2024, time.March, 8)}, // lenient form
		{in: "2024-13-01", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDateString(t *testing.T) {
	d := day(2024, time.March, 8)
	if got := d.String(); got != "2024-03-08" {
		t.Errorf("String() = %q, want %q", got, "2024-03-08")
	}
}

func TestDateAddNormalizes(t *testing.T) {
	d := day(2024, time.January, 31).Add(1)
	if want := day(2024, time.February, 1); d != want {
		t.Errorf("Add(1) = %s, want %s", d, want)
	}
}

func TestDateOrdering(t *testing.T) {
	a := day(2024, time.March, 8)
	b := day(2024, time.March, 9)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() is inconsistent for %s and %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() is inconsistent for %s and %s", a, b)
	}
}
