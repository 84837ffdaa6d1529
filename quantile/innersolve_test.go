package quantile_test

import (
	"testing"

	"github.com/arzani/rquantile/mdpvec"
	"github.com/arzani/rquantile/quantile"
	"github.com/arzani/rquantile/transition"
	"github.com/stretchr/testify/require"
)

func TestInnerSolverEmptyStoreIsNoOp(t *testing.T) {
	store := buildStore(t, 2, nil)
	xPlus, err := mdpvec.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, xPlus.Set(0, 0.4))
	defined := mdpvec.NewBitsetFromIndices(2, []int{0})
	one, zero := mdpvec.NewBitset(2), mdpvec.NewBitset(2)

	st := quantile.NewInnerSolverState(2)
	cfg := quantile.DefaultConfig()
	_, err = st.Solve(store, xPlus, defined, one, zero, quantile.Max, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, 0.4, xPlus.At(0))
	require.Equal(t, 0.0, xPlus.At(1))
}

func TestInnerSolverConvergesOverACycle(t *testing.T) {
	// State 0 <-> state 1 zero-reward cycle; x+ pins state 0 to 1, leaves
	// state 1 undefined. The cycle must propagate 1 to state 1.
	store := buildStore(t, 2, [][3]interface{}{
		{0, 0, []transition.Transition{{Successor: 1, Prob: 1, RTsa: 0}}},
		{1, 0, []transition.Transition{{Successor: 0, Prob: 1, RTsa: 0}}},
	})

	xPlus, err := mdpvec.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, xPlus.Set(0, 1))
	defined := mdpvec.NewBitsetFromIndices(2, []int{0})
	one, zero := mdpvec.NewBitset(2), mdpvec.NewBitset(2)

	st := quantile.NewInnerSolverState(2)
	cfg := quantile.DefaultConfig()
	_, err = st.Solve(store, xPlus, defined, one, zero, quantile.Max, cfg, nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0, xPlus.At(0), 1e-9)
	require.InDelta(t, 1.0, xPlus.At(1), 1e-9)
}

func TestInnerSolverNonConvergenceAtLowKMax(t *testing.T) {
	store := buildStore(t, 2, [][3]interface{}{
		{0, 0, []transition.Transition{{Successor: 1, Prob: 1, RTsa: 0}}},
		{1, 0, []transition.Transition{{Successor: 0, Prob: 1, RTsa: 0}}},
	})

	xPlus, err := mdpvec.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, xPlus.Set(0, 1))
	defined := mdpvec.NewBitsetFromIndices(2, []int{0})
	one, zero := mdpvec.NewBitset(2), mdpvec.NewBitset(2)

	st := quantile.NewInnerSolverState(2)
	cfg := quantile.DefaultConfig()
	cfg.KMax = 1
	cfg.Epsilon = 1e-12

	_, err = st.Solve(store, xPlus, defined, one, zero, quantile.Max, cfg, nil)
	require.Error(t, err)
	var nc *quantile.NonConvergenceError
	require.ErrorAs(t, err, &nc)
}

func TestInnerSolverPinningOverridesAggregation(t *testing.T) {
	store := buildStore(t, 2, [][3]interface{}{
		{0, 0, []transition.Transition{{Successor: 1, Prob: 1, RTsa: 0}}},
	})

	xPlus, err := mdpvec.NewDense(2)
	require.NoError(t, err)
	defined := mdpvec.NewBitset(2)
	one := mdpvec.NewBitsetFromIndices(2, []int{0})
	zero := mdpvec.NewBitset(2)

	st := quantile.NewInnerSolverState(2)
	cfg := quantile.DefaultConfig()
	_, err = st.Solve(store, xPlus, defined, one, zero, quantile.Max, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, 1.0, xPlus.At(0), "O-pinning must win over the zero-reward aggregation")
}
