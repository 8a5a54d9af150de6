package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{999.995, "$1,000.00"},
		{-42.1, "-$42.10"},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(40); got != "40.00%" {
		t.Errorf("FormatPercent(40) = %q", got)
	}
	if got := FormatPercent(33.33); got != "33.33%" {
		t.Errorf("FormatPercent(33.33) = %q", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth(2026, 9); got != "Sep 2026" {
		t.Errorf("FormatMonth = %q, want Sep 2026", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty sparkline = %q", got)
	}

	got := RenderSparkline([]float64{0, 50, 100})
	if len([]rune(got)) != 3 {
		t.Errorf("sparkline rune count = %d, want 3", len([]rune(got)))
	}
}
