// Package amount handles the numeric text typed into the worksheet.
//
// Every amount field holds digits only, optionally grouped with a period
// every three digits from the right ("1.250.000"). Parsing is lenient:
// anything that is not a valid integer is treated as zero.
package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Separator is the thousands separator used by grouped amounts.
const Separator = "."

// StripNonDigits removes every character that is not an ASCII digit.
func StripNonDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Group strips non-digits from raw and inserts a separator every three
// digits counted from the right. Leading zeros are kept as typed.
//
//	Group("1234567") == "1.234.567"
//	Group("12.345")  == "12.345"
func Group(raw string) string {
	digits := StripNonDigits(raw)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(Separator)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Parse reads a grouped or plain digit string as a base-10 integer.
// Empty or malformed input yields zero.
func Parse(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, Separator, "")
	if s == "" {
		return decimal.Zero
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return decimal.Zero
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
