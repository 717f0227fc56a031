// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMillions formats an amount in millions of euros.
// e.g., 25.347 -> "25.35 M€"
func FormatMillions(v float64) string {
	return fmt.Sprintf("%.2f M€", v)
}

// FormatCount formats a headcount with thousands separators, French style.
// e.g., 198234.7 -> "198 235"
func FormatCount(v float64) string {
	n := int64(v + 0.5)
	if v < 0 {
		n = int64(v - 0.5)
	}
	return FormatNumber(n)
}

// FormatNumber adds space separators to an integer.
// e.g., 1234567 -> "1 234 567"
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
			result.WriteByte(' ')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatPercentPoints formats an already-scaled percentage value.
// e.g., -13.4 -> "-13.4%"
func FormatPercentPoints(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}

// FormatSignedPercent formats a percentage with an explicit sign.
// e.g., 4.2 -> "+4.2%"
func FormatSignedPercent(f float64) string {
	return fmt.Sprintf("%+.1f%%", f)
}
