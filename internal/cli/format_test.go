package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{4174, "4,174"},
		{1234567, "1,234,567"},
		{-2400, "-2,400"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{98.6, "99"},
		{1774.4, "1,774"},
		{2400, "2,400"},
	}
	for _, tc := range cases {
		if got := FormatCount(tc.in); got != tc.want {
			t.Errorf("FormatCount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(42.512); got != "42.5%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestFormatWeeksAsYears(t *testing.T) {
	if got := FormatWeeksAsYears(2400); got != "46.2 years" {
		t.Errorf("FormatWeeksAsYears(2400) = %q", got)
	}
}
