package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDecimalIsExact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   Cents
		want string
	}{
		{850, "8.5"},
		{0, "0"},
		{120, "1.2"},
		{1, "0.01"},
	}
	for _, tc := range cases {
		require.True(t, tc.in.Decimal().Equal(decimal.RequireFromString(tc.want)), tc.want)
	}
}

func TestEurosAndDisplay(t *testing.T) {
	t.Parallel()

	c := Cents(970)
	require.Equal(t, "9.70", c.Euros())
	require.Equal(t, "9.70€", c.Display())

	require.Equal(t, "0.00", Cents(0).Euros())
	require.Equal(t, "12.00€", Cents(1200).Display())
}

func TestMul(t *testing.T) {
	t.Parallel()

	require.Equal(t, Cents(2910), Cents(970).Mul(3))
	require.Equal(t, Cents(0), Cents(970).Mul(0))
}
