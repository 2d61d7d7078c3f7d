package aggregation

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted monetary amount.
const CurrencySymbol = "$"

var hundred = decimal.NewFromInt(100)

// FormatCurrency renders an amount with thousands separators and exactly two
// fraction digits, prefixed with the currency symbol: 1234.5 → "$1,234.50".
// The sign follows the symbol ("$-12.00").
func FormatCurrency(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	whole := d.Truncate(0).IntPart()
	return CurrencySymbol + sign + humanize.Comma(whole) + fixed[len(fixed)-3:]
}

// FormatPercent renders d as a percentage with the given number of fraction digits: "83.3%".
func FormatPercent(d decimal.Decimal, places int32) string {
	return d.StringFixed(places) + "%"
}

// FormatSignedPercent renders d as a percentage with one fraction digit and an explicit sign: "+20.1%".
func FormatSignedPercent(d decimal.Decimal) string {
	d = d.Round(1)
	if d.IsNegative() {
		return FormatPercent(d, 1)
	}
	return "+" + FormatPercent(d, 1)
}

// PercentOf returns part / whole × 100, or zero when whole is not positive.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// PercentChange returns (current - previous) / previous × 100.
// With no previous value the change is 0 when current is also zero and +100 otherwise.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred)
}
