package clerk

import "testing"

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "12.50", want: "12.5"},
		{in: "-3", want: "-3"},
		{in: "0.3333", want: "0.3333"},
		{in: "", want: "0"}, // absent cell reads as zero
		{in: "1,000", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseMoney(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMoney(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil {
			wantMoney(t, "ParseMoney("+tc.in+")", got, tc.want)
		}
	}
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, the whole point of decimal amounts.
	wantMoney(t, "0.1+0.2", M(0.1).Add(M(0.2)), "0.3")
	wantMoney(t, "1.1-1", M(1.1).Sub(M(1)), "0.1")
	wantMoney(t, "0.1x3", M(0.1).MulInt(3), "0.3")
}

func TestMoneyRound2(t *testing.T) {
	testCases := []struct{ in, want string }{
		{"10.005", "10.01"}, // half away from zero
		{"10.004", "10"},
		{"-10.005", "-10.01"},
		{"7", "7"},
	}
	for _, tc := range testCases {
		m, err := ParseMoney(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		wantMoney(t, "Round2("+tc.in+")", m.Round2(), tc.want)
	}
}

func TestMoneyDisplay(t *testing.T) {
	testCases := []struct{ in, want string }{
		{"1234.5", "$1,234.50"},
		{"0", "$0.00"},
		{"-2.5", "-$2.50"},
	}
	for _, tc := range testCases {
		m, err := ParseMoney(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := m.Display(); got != tc.want {
			t.Errorf("Display(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoneyMulUnits(t *testing.T) {
	wantMoney(t, "0.25x100", M(0.25).MulUnits(100), "25")
	wantMoney(t, "0.9x0", M(0.9).MulUnits(0), "0")
}
