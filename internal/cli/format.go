// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"
)

// FormatAmount formats a monetary amount with two decimal places.
// e.g., 1234.5 -> "$1,234.50"
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := fmt.Sprintf("$%s.%02d", groupThousands(whole), cents)
	if neg {
		return "-" + s
	}
	return s
}

// FormatPercent formats an already-scaled percentage value.
// e.g., 40.0 -> "40.00%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatMonth formats a (year, month) pair as "Jan 2026".
func FormatMonth(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// FormatDate formats a day-precision date.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// groupThousands adds comma separators to a non-negative integer.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	remainder := len(s) % 3
	if remainder > 0 {
		out = append(out, s[:remainder]...)
	}
	for i := remainder; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
