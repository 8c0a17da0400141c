package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParsePrice parses a price entered by a seller.
func ParsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatPrice renders a price with exactly two decimals.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// NormalizePrice reformats s to two decimals when it is a number and returns
// it untouched otherwise, so that invalid input still reaches validation.
func NormalizePrice(s string) string {
	if d, ok := ParsePrice(s); ok {
		return FormatPrice(d)
	}
	return s
}

// AdjustByPercent computes base * (1 ± pct/100) rounded to two decimals.
func AdjustByPercent(base, pct decimal.Decimal, increase bool) decimal.Decimal {
	factor := pct.Div(hundred)
	if increase {
		factor = decimal.NewFromInt(1).Add(factor)
	} else {
		factor = decimal.NewFromInt(1).Sub(factor)
	}
	return base.Mul(factor).Round(2)
}

// ParseQuantity parses a whole, non-fractional quantity.
func ParseQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatQuantity renders a quantity as an integer string.
func FormatQuantity(n int) string {
	return strconv.Itoa(n)
}
