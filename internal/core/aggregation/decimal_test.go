package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "zero", in: "0", want: "$0.00"},
		{name: "pads fraction", in: "180", want: "$180.00"},
		{name: "one fraction digit", in: "12.5", want: "$12.50"},
		{name: "thousands", in: "1234.56", want: "$1,234.56"},
		{name: "millions", in: "1234567.891", want: "$1,234,567.89"},
		{name: "rounds half up", in: "0.005", want: "$0.01"},
		{name: "rounding carries into whole part", in: "999.999", want: "$1,000.00"},
		{name: "negative", in: "-1234.5", want: "$-1,234.50"},
		{name: "sub-cent", in: "0.001", want: "$0.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatCurrency(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	require.Equal(t, "83.3%", FormatPercent(decimal.RequireFromString("83.33333"), 1))
	require.Equal(t, "0.0%", FormatPercent(decimal.Zero, 1))
	require.Equal(t, "100.0%", FormatPercent(decimal.NewFromInt(100), 1))

	require.Equal(t, "+20.1%", FormatSignedPercent(decimal.RequireFromString("20.1")))
	require.Equal(t, "+0.0%", FormatSignedPercent(decimal.Zero))
	require.Equal(t, "-3.5%", FormatSignedPercent(decimal.RequireFromString("-3.46")))
	require.Equal(t, "+0.0%", FormatSignedPercent(decimal.RequireFromString("-0.01")))
}

func TestPercentOf(t *testing.T) {
	got := PercentOf(decimal.NewFromInt(150), decimal.NewFromInt(180))
	require.Equal(t, "83.3", got.StringFixed(1))

	require.True(t, decimal.Zero.Equal(PercentOf(decimal.NewFromInt(5), decimal.Zero)))
	require.True(t, decimal.NewFromInt(100).Equal(PercentOf(decimal.NewFromInt(7), decimal.NewFromInt(7))))
}

func TestPercentChange(t *testing.T) {
	require.True(t, decimal.NewFromInt(50).Equal(PercentChange(decimal.NewFromInt(150), decimal.NewFromInt(100))))
	require.True(t, decimal.NewFromInt(-25).Equal(PercentChange(decimal.NewFromInt(75), decimal.NewFromInt(100))))
	require.True(t, decimal.Zero.Equal(PercentChange(decimal.Zero, decimal.Zero)))
	require.True(t, decimal.NewFromInt(100).Equal(PercentChange(decimal.NewFromInt(3), decimal.Zero)))
}
