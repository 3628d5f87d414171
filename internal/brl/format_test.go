package brl

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "zero", input: "0", want: "R$ 0,00"},
		{name: "cents only", input: "0.01", want: "R$ 0,01"},
		{name: "thousands grouping", input: "1234.56", want: "R$ 1.234,56"},
		{name: "under a thousand", input: "999.9", want: "R$ 999,90"},
		{name: "millions", input: "1234567.89", want: "R$ 1.234.567,89"},
		{name: "rounds to two decimals", input: "2050.315", want: "R$ 2.050,32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decimal.RequireFromString(tt.input)
			assert.Equal(t, tt.want, FormatCurrency(v))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "canonical form", input: "R$ 1.234,56", want: "1234.56"},
		{name: "no prefix", input: "1.234,56", want: "1234.56"},
		{name: "plain number", input: "1500", want: "1500"},
		{name: "coerced numeric cell", input: "844.15", want: "844.15"},
		{name: "coerced numeric with prefix", input: "R$ 2411.85", want: "2411.85"},
		{name: "grouped without comma", input: "1.234.567", want: "1234567"},
		{name: "empty", input: "", want: "0"},
		{name: "garbage", input: "a combinar", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(ParseCurrency(tt.input)),
				"ParseCurrency(%q) = %s, want %s", tt.input, ParseCurrency(tt.input), want)
		})
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, raw := range []string{"0", "0.01", "1234.56", "999999.99"} {
		v := decimal.RequireFromString(raw)
		got := ParseCurrency(FormatCurrency(v))
		assert.True(t, v.Round(2).Equal(got), "round trip of %s gave %s", raw, got)
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "21999998888", want: "(21) 99999-8888"},
		{input: "2199998888", want: "(21) 9999-8888"},
		{input: "(21) 99999-8888", want: "(21) 99999-8888"},
		{input: "123", want: "123"},
		{input: "", want: ""},
		{input: "219999988881234", want: "(21) 99999-8888"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPhone(tt.input), "input %q", tt.input)
	}
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("25/01/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "25/01/2026", FormatDate(d))

	_, err = ParseDate("2026-01-25")
	assert.Error(t, err)
}
