package clerk

import "testing"

func TestParseAccount(t *testing.T) {
	for _, account := range AllAccounts() {
		got, err := ParseAccount(account.String())
		if err != nil {
			t.Errorf("ParseAccount(%q) failed: %v", account, err)
		}
		if got != account {
			t.Errorf("ParseAccount(%q) = %v, want %v", account, got, account)
		}
	}
	if _, err := ParseAccount("chequing"); err == nil {
		t.Error("ParseAccount(chequing) succeeded, want error")
	}
	if _, err := ParseAccount(""); err == nil {
		t.Error("ParseAccount of empty string succeeded, want error")
	}
}

func TestAccountGroups(t *testing.T) {
	testCases := []struct {
		account Account
		rrsp    bool
		nonRRSP bool
	}{
		{SDRSP, true, false},
		{LockedSDRSP, true, false},
		{Margin, false, true},
		{TFSA, false, true},
		{RESP, false, false}, // resp belongs to neither reporting group
	}
	for _, tc := range testCases {
		if got := tc.account.IsRRSP(); got != tc.rrsp {
			t.Errorf("%s.IsRRSP() = %v, want %v", tc.account, got, tc.rrsp)
		}
		if got := tc.account.IsNonRRSP(); got != tc.nonRRSP {
			t.Errorf("%s.IsNonRRSP() = %v, want %v", tc.account, got, tc.nonRRSP)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{KindBuy, KindSell, KindTransfer, KindContribute, KindContributionLimit, KindDividend, KindWithdraw} {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", kind, err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind, got, kind)
		}
	}
	if _, err := ParseKind("split"); err == nil {
		t.Error("ParseKind(split) succeeded, want error")
	}
}
