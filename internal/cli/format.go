// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatAmount formats a monetary amount with the configured currency
// symbol, always with two fractional digits and comma-separated thousands.
// e.g., 1234.5 -> "$1,234.50"
func FormatAmount(currency string, v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	formatted := currency + groupThousands(intPart) + "." + fracPart
	if neg {
		return "-" + formatted
	}
	return formatted
}

// FormatSigned formats a monetary amount with an explicit leading sign.
// Used for net savings, where the sign carries meaning.
func FormatSigned(currency string, v float64) string {
	if v < 0 {
		return "-" + FormatAmount(currency, -v)
	}
	return "+" + FormatAmount(currency, v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
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

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate formats a calendar date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format("2006-01-02")
}

// FormatPeriod renders a month/year selection for report headers.
// Either part may be zero.
func FormatPeriod(month, year int) string {
	switch {
	case month > 0 && year > 0:
		return fmt.Sprintf("%s %d", time.Month(month).String(), year)
	case month > 0:
		return time.Month(month).String()
	case year > 0:
		return strconv.Itoa(year)
	default:
		return "all time"
	}
}
