// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a rupee amount with compact lakh/crore suffixes.
// e.g., 1_50_000 -> "₹1.5L", 2_50_00_000 -> "₹2.5Cr"
func FormatMoney(amount float64) string {
	neg := amount < 0
	abs := math.Abs(amount)

	var s string
	switch {
	case abs >= 1_00_00_000:
		s = fmt.Sprintf("₹%.2fCr", abs/1_00_00_000)
	case abs >= 1_00_000:
		s = fmt.Sprintf("₹%.1fL", abs/1_00_000)
	case abs >= 1_000:
		s = fmt.Sprintf("₹%.1fK", abs/1_000)
	default:
		s = fmt.Sprintf("₹%.0f", abs)
	}

	if neg {
		return "-" + s
	}
	return s
}

// FormatMoneyFull formats a rupee amount with Indian digit grouping and no
// suffix. e.g., 12345678 -> "₹1,23,45,678"
func FormatMoneyFull(amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return "-₹" + groupIndian(-n)
	}
	return "₹" + groupIndian(n)
}

// FormatCount formats a user or unit count with compact suffixes.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M"
func FormatCount(n float64) string {
	abs := math.Abs(n)

	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", n/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", n/1_000)
	default:
		return strconv.FormatInt(int64(math.Round(n)), 10)
	}
}

// FormatNumber adds Indian-style separators to an integer.
// e.g., 12345678 -> "1,23,45,678"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupIndian(n)
}

// groupIndian applies the lakh/crore grouping: the last three digits form
// one group, every two digits after that form another.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatPercentPoints formats a value already expressed in percentage
// points. e.g., 42.5 -> "42.5%"
func FormatPercentPoints(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}

// FormatDelta formats a money delta with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}

// FormatRunway formats a runway value in months. Anything beyond 100
// months, including the no-burn sentinel, reports as "100+".
func FormatRunway(months int) string {
	if months > 100 {
		return "100+"
	}
	return fmt.Sprintf("%dmo", months)
}

// FormatMultiple formats a ratio like a burn multiple. e.g., 1.73 -> "1.7x"
func FormatMultiple(f float64) string {
	return fmt.Sprintf("%.1fx", f)
}
