package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOperators_InitialAndApply(t *testing.T) {
	tests := []struct {
		name        string
		op          string
		incoming    decimal.Decimal
		current     decimal.Decimal
		next        decimal.Decimal
		wantInitial decimal.Decimal
		wantApply   decimal.Decimal
	}{
		{
			name:        "count",
			op:          OpCount,
			incoming:    decimal.NewFromInt(123),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(456),
			wantInitial: decimal.NewFromInt(1),
			wantApply:   decimal.NewFromInt(10),
		},
		{
			name:        "sum",
			op:          OpSum,
			incoming:    decimal.RequireFromString("0.10"),
			current:     decimal.RequireFromString("0.20"),
			next:        decimal.RequireFromString("0.10"),
			wantInitial: decimal.RequireFromString("0.10"),
			wantApply:   decimal.RequireFromString("0.30"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agg, ok := Operators[tc.op]
			require.True(t, ok)
			require.True(t, tc.wantInitial.Equal(agg.Initial(tc.incoming)))
			require.True(t, tc.wantApply.Equal(agg.Apply(tc.current, tc.next)))
		})
	}
}

func TestFold(t *testing.T) {
	values := []decimal.Decimal{
		decimal.RequireFromString("0.10"),
		decimal.RequireFromString("0.20"),
		decimal.RequireFromString("0.30"),
	}

	require.True(t, decimal.RequireFromString("0.60").Equal(Fold(OpSum, values)))
	require.True(t, decimal.NewFromInt(3).Equal(Fold(OpCount, values)))
	require.True(t, decimal.Zero.Equal(Fold(OpSum, nil)))
	require.True(t, decimal.Zero.Equal(Fold("avg", values)))
}
