// Package format renders market values for the console.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NA is printed for values the API sent as null.
const NA = "N/A"

// USD renders d with two decimals and no grouping, e.g. $67187.33. The sign
// follows the $, as in $-5.00.
func USD(d decimal.Decimal) string {
	return "$" + fixed2(d)
}

// GroupedUSD rounds d to a whole number and groups thousands, e.g. $1,317,802,988,326.
func GroupedUSD(d decimal.Decimal) string {
	return "$" + Grouped(d)
}

// fixed2 is d with two decimals. A negative value that rounds to zero keeps
// its sign (-0.00), as printf-style float formatting does.
func fixed2(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.IsNegative() && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// Grouped rounds d to a whole number and inserts a comma every three digits.
func Grouped(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Percent renders d with two decimals and a trailing %.
func Percent(d decimal.Decimal) string {
	return fixed2(d) + "%"
}

func NullUSD(d decimal.NullDecimal) string {
	if !d.Valid {
		return NA
	}
	return USD(d.Decimal)
}

func NullGroupedUSD(d decimal.NullDecimal) string {
	if !d.Valid {
		return NA
	}
	return GroupedUSD(d.Decimal)
}

func NullPercent(d decimal.NullDecimal) string {
	if !d.Valid {
		return NA
	}
	return Percent(d.Decimal)
}
