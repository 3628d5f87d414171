// Package brl implements the Brazilian textual conventions used by the
// spreadsheet and the offer letter: currency as "R$ 1.234,56", phone numbers
// as "(DD) DDDDD-DDDD" and dates as "dd/mm/yyyy".
package brl

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// DateLayout is the date format used across all sheets.
const DateLayout = "02/01/2006"

// TimestampLayout is the creation timestamp format on the results sheet.
const TimestampLayout = "02/01/2006 15:04:05"

// FormatCurrency renders a monetary value in the canonical form "R$ 1.234,56":
// thousands grouped with dots, two decimal digits after a comma.
func FormatCurrency(v decimal.Decimal) string {
	fixed := v.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString("R$ ")
	if neg {
		b.WriteString("-")
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// ParseCurrency converts a currency cell back to its numeric value: the "R$"
// prefix and thousands dots are stripped and the decimal comma becomes a dot.
// Cells the spreadsheet has coerced to numbers surface as dot-decimal strings
// ("844.15"); a dot is only a thousands separator when a decimal comma is
// present or the grouping repeats. Unparseable input yields zero; the sheets
// carry free-typed cells and the follow-up flow must not fail on them.
func ParseCurrency(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if strings.Contains(s, ",") || strings.Count(s, ".") > 1 {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// FormatPhone applies the "(DD) DDDDD-DDDD" mask to a digit string. Ten-digit
// numbers get the short "(DD) DDDD-DDDD" mask; anything else is returned as
// the bare digit sequence. Input beyond 11 digits is truncated.
func FormatPhone(raw string) string {
	var digits []rune
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
		if len(digits) == 11 {
			break
		}
	}

	d := string(digits)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:11]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:10]
	default:
		return d
	}
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a dd/mm/yyyy date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}
