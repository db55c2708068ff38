// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCount renders a fractional count as a whole number with separators.
func FormatCount(f float64) string {
	return FormatNumber(int64(math.Round(f)))
}

// FormatPercent formats a 0-100 percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatYears formats fractional years.
func FormatYears(y float64) string {
	return fmt.Sprintf("%.1f years", y)
}

// FormatWeeksAsYears converts a week count into approximate years.
func FormatWeeksAsYears(weeks float64) string {
	return FormatYears(weeks / 52)
}
