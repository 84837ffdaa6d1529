package quantile_test

import (
	"testing"

	"github.com/arzani/rquantile/quantile"
	"github.com/stretchr/testify/require"
)

func TestParseOperator(t *testing.T) {
	cases := map[string]quantile.Operator{
		"<":  quantile.LT,
		"<=": quantile.LEQ,
		">":  quantile.GT,
		">=": quantile.GEQ,
	}
	for s, want := range cases {
		got, err := quantile.ParseOperator(s)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := quantile.ParseOperator("~=")
	require.ErrorIs(t, err, quantile.ErrUnknownOperator)
}

func TestOperatorSatisfies(t *testing.T) {
	require.True(t, quantile.GEQ.Satisfies(0.5, 0.5))
	require.False(t, quantile.GT.Satisfies(0.5, 0.5))
	require.True(t, quantile.LT.Satisfies(0.3, 0.5))
	require.True(t, quantile.LEQ.Satisfies(0.5, 0.5))
}

func TestOperatorComplement(t *testing.T) {
	require.Equal(t, quantile.GEQ, quantile.LT.Complement())
	require.Equal(t, quantile.GT, quantile.LEQ.Complement())
	require.Equal(t, quantile.LEQ, quantile.GT.Complement())
	require.Equal(t, quantile.LT, quantile.GEQ.Complement())
}

func TestWithEpsilonPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { quantile.WithEpsilon(0) })
	require.Panics(t, func() { quantile.WithEpsilon(-1) })
}

func TestWithKMaxPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { quantile.WithKMax(0) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := quantile.DefaultConfig()
	require.Equal(t, quantile.Max, cfg.Mode)
	require.False(t, cfg.LowerBound)
	require.Greater(t, cfg.Epsilon, 0.0)
	require.Greater(t, cfg.KMax, 0)
}
