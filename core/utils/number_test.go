package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"integer", "10", "10", true},
		{"decimals", " 12.5 ", "12.5", true},
		{"negative", "-3", "-3", true},
		{"empty", "  ", "0", false},
		{"text", "ten", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParsePrice(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestNormalizePrice(t *testing.T) {
	assert.Equal(t, "1.00", NormalizePrice("1"))
	assert.Equal(t, "2.35", NormalizePrice("2.345"))
	assert.Equal(t, "abc", NormalizePrice("abc"))
	assert.Equal(t, "", NormalizePrice(""))
}

func TestAdjustByPercent(t *testing.T) {
	base := decimal.RequireFromString("10.00")
	pct := decimal.NewFromInt(15)

	assert.Equal(t, "11.50", FormatPrice(AdjustByPercent(base, pct, true)))
	assert.Equal(t, "8.50", FormatPrice(AdjustByPercent(base, pct, false)))
	assert.Equal(t, "3.33", FormatPrice(AdjustByPercent(decimal.RequireFromString("9.99"), decimal.RequireFromString("66.6667"), false)))
}

func TestParseQuantity(t *testing.T) {
	n, ok := ParseQuantity(" 12 ")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = ParseQuantity("1.5")
	assert.False(t, ok)

	_, ok = ParseQuantity("")
	assert.False(t, ok)

	assert.Equal(t, "7", FormatQuantity(7))
}
