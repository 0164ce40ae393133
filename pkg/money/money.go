// Package money provides parsing and display helpers for monetary amounts.
// Amounts are plain decimal values in a caller-defined unit currency; no
// currency tagging or locale handling is attempted.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse reads a user-entered amount. Empty or whitespace-only input parses
// as zero so unedited fields stay well defined; thousands separators are
// tolerated.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

// Round rounds an amount to cents using banker's rounding.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// Format renders an amount with two decimal places and thousands separators,
// e.g. "12,345.67" or "-1,200.00".
func Format(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatSigned is Format with an explicit leading sign on positive amounts.
func FormatSigned(d decimal.Decimal) string {
	if d.Sign() > 0 {
		return "+" + Format(d)
	}
	return Format(d)
}
