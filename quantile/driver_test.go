package quantile_test

import (
	"math"
	"testing"

	"github.com/arzani/rquantile/mdpvec"
	"github.com/arzani/rquantile/quantile"
	"github.com/arzani/rquantile/transition"
	"github.com/arzani/rquantile/transition/hybrid"
	"github.com/arzani/rquantile/transition/sparse"
	"github.com/stretchr/testify/require"
)

func denseVector(t *testing.T, values ...float64) *mdpvec.Dense {
	t.Helper()
	d, err := mdpvec.NewDense(len(values))
	require.NoError(t, err)
	for i, v := range values {
		require.NoError(t, d.Set(i, v))
	}

	return d
}

func emptySparseStore(t *testing.T, n int) *sparse.Store {
	t.Helper()
	s, err := sparse.NewBuilder(n).Build()
	require.NoError(t, err)

	return s
}

// S1: two-state MDP, 0 --(reward 1, p=1)--> 1, 1 absorbing in O.
// Threshold >= 0.5, max mode. Expect Q(0)=1, Q(1)=0.
func TestScenarioS1(t *testing.T) {
	tPlus := buildStore(t, 2, [][3]interface{}{
		{0, 1, []transition.Transition{{Successor: 1, Prob: 1, RTsa: 0}}},
	})
	tZero := emptySparseStore(t, 2)

	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0, 1),
		StateRewards: denseVector(t, 0, 0),
		MaxReward:    denseVector(t, 1, 0),
		Infinity:     denseVector(t, 1, 1),
		One:          mdpvec.NewBitsetFromIndices(2, []int{1}),
		Zero:         mdpvec.NewBitset(2),
	}

	results, err := quantile.Solve(tPlus, tZero, model, []int{0, 1}, quantile.GEQ, []float64{0.5}, quantile.WithMax())
	require.NoError(t, err)
	require.Equal(t, 1.0, results[0.5].At(0))
	require.Equal(t, 0.0, results[0.5].At(1))
}

// S2: same topology, transition reward 3, window 3. Threshold >= 1.0.
// Expect Q(0) = 3.
func TestScenarioS2(t *testing.T) {
	tPlus := buildStore(t, 2, [][3]interface{}{
		{0, 3, []transition.Transition{{Successor: 1, Prob: 1, RTsa: 0}}},
	})
	tZero := emptySparseStore(t, 2)

	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0, 1),
		StateRewards: denseVector(t, 0, 0),
		MaxReward:    denseVector(t, 3, 0),
		Infinity:     denseVector(t, 1, 1),
		One:          mdpvec.NewBitsetFromIndices(2, []int{1}),
		Zero:         mdpvec.NewBitset(2),
	}

	results, err := quantile.Solve(tPlus, tZero, model, []int{0}, quantile.GEQ, []float64{1.0}, quantile.WithMax())
	require.NoError(t, err)
	require.Equal(t, 3.0, results[1.0].At(0))
}

// S4: zero-reward cycle 0<->1, target reachable only via 0->2 (reward 1, in
// O). Threshold >= 0.5, max mode. Expect Q(0) = 1; the inner solver must
// converge rather than spin on the cycle.
func TestScenarioS4(t *testing.T) {
	tPlus := buildStore(t, 3, [][3]interface{}{
		{0, 1, []transition.Transition{{Successor: 2, Prob: 1, RTsa: 0}}},
	})
	tZero := buildStore(t, 3, [][3]interface{}{
		{0, 0, []transition.Transition{{Successor: 1, Prob: 1, RTsa: 0}}},
		{1, 0, []transition.Transition{{Successor: 0, Prob: 1, RTsa: 0}}},
	})

	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0, 0, 1),
		StateRewards: denseVector(t, 0, 0, 0),
		MaxReward:    denseVector(t, 1, 0, 0),
		Infinity:     denseVector(t, 1, 1, 1),
		One:          mdpvec.NewBitsetFromIndices(3, []int{2}),
		Zero:         mdpvec.NewBitset(3),
	}

	results, err := quantile.Solve(tPlus, tZero, model, []int{0}, quantile.GEQ, []float64{0.5}, quantile.WithMax())
	require.NoError(t, err)
	require.Equal(t, 1.0, results[0.5].At(0))
}

// S5: X∞(s0) = 0.3 fails the >= 0.9 threshold outright, so s0 is decided
// +∞ before any outer iteration runs.
func TestScenarioS5Infinity(t *testing.T) {
	tPlus := emptySparseStore(t, 1)
	tZero := emptySparseStore(t, 1)

	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0),
		StateRewards: denseVector(t, 0),
		MaxReward:    denseVector(t, 0),
		Infinity:     denseVector(t, 0.3),
		One:          mdpvec.NewBitset(1),
		Zero:         mdpvec.NewBitset(1),
	}

	results, err := quantile.Solve(tPlus, tZero, model, []int{0}, quantile.GEQ, []float64{0.9}, quantile.WithMax())
	require.NoError(t, err)
	require.True(t, math.IsInf(results[0.9].At(0), 1))
}

// S6: multi-threshold. A single state accumulates value via three
// reward-gated positive choices (reward 1, 2, 3) so that v_i climbs
// 0.1, 0.3, 0.6, 0.8 at i = 0, 1, 2, 3. Expect Q_0.25=1, Q_0.5=2, Q_0.75=3.
func TestScenarioS6MultiThreshold(t *testing.T) {
	tPlus := buildStore(t, 3, [][3]interface{}{
		{0, 1, []transition.Transition{{Successor: 1, Prob: 0.3, RTsa: 0}, {Successor: 2, Prob: 0.7, RTsa: 0}}},
		{0, 2, []transition.Transition{{Successor: 1, Prob: 0.6, RTsa: 0}, {Successor: 2, Prob: 0.4, RTsa: 0}}},
		{0, 3, []transition.Transition{{Successor: 1, Prob: 0.8, RTsa: 0}, {Successor: 2, Prob: 0.2, RTsa: 0}}},
	})
	tZero := emptySparseStore(t, 3)

	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0.1, 1, 0),
		StateRewards: denseVector(t, 0, 0, 0),
		MaxReward:    denseVector(t, 3, 0, 0),
		Infinity:     denseVector(t, 1, 1, 0),
		One:          mdpvec.NewBitsetFromIndices(3, []int{1}),
		Zero:         mdpvec.NewBitsetFromIndices(3, []int{2}),
	}

	results, err := quantile.Solve(
		tPlus, tZero, model, []int{0}, quantile.GEQ,
		[]float64{0.25, 0.5, 0.75}, quantile.WithMax(),
	)
	require.NoError(t, err)
	require.Equal(t, 1.0, results[0.25].At(0))
	require.Equal(t, 2.0, results[0.5].At(0))
	require.Equal(t, 3.0, results[0.75].At(0))
}

// Back-end equivalence: sparse and hybrid stores built from the same
// topology must yield identical results.
func TestBackendEquivalenceS1(t *testing.T) {
	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0, 1),
		StateRewards: denseVector(t, 0, 0),
		MaxReward:    denseVector(t, 1, 0),
		Infinity:     denseVector(t, 1, 1),
		One:          mdpvec.NewBitsetFromIndices(2, []int{1}),
		Zero:         mdpvec.NewBitset(2),
	}

	sparsePlus := buildStore(t, 2, [][3]interface{}{
		{0, 1, []transition.Transition{{Successor: 1, Prob: 1, RTsa: 0}}},
	})
	sparseZero := emptySparseStore(t, 2)

	hb := hybrid.NewStoreBuilder(2)
	require.NoError(t, hb.AddPositive(hybrid.ChoiceSpec{
		State: 0, Choice: 0, ActionRewards: []int{1},
		Successors: []int{1}, Probs: []float64{1}, RTsa: []int{0},
	}))
	hybridStore := hb.Build()

	sparseResults, err := quantile.Solve(sparsePlus, sparseZero, model, []int{0, 1}, quantile.GEQ, []float64{0.5}, quantile.WithMax())
	require.NoError(t, err)
	hybridResults, err := quantile.Solve(hybridStore, hybridStore, model, []int{0, 1}, quantile.GEQ, []float64{0.5}, quantile.WithMax())
	require.NoError(t, err)

	require.Equal(t, sparseResults[0.5].At(0), hybridResults[0.5].At(0))
	require.Equal(t, sparseResults[0.5].At(1), hybridResults[0.5].At(1))
}

func TestSolveNoThresholds(t *testing.T) {
	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0),
		StateRewards: denseVector(t, 0),
		MaxReward:    denseVector(t, 0),
		Infinity:     denseVector(t, 0),
		One:          mdpvec.NewBitset(1),
		Zero:         mdpvec.NewBitset(1),
	}
	_, err := quantile.Solve(emptySparseStore(t, 1), emptySparseStore(t, 1), model, []int{0}, quantile.GEQ, nil)
	require.ErrorIs(t, err, quantile.ErrNoThresholds)
}

func TestSolveBadPartition(t *testing.T) {
	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0, 0),
		StateRewards: denseVector(t, 0, 0),
		MaxReward:    denseVector(t, 0, 0),
		Infinity:     denseVector(t, 0, 0),
		One:          mdpvec.NewBitsetFromIndices(2, []int{0}),
		Zero:         mdpvec.NewBitsetFromIndices(2, []int{0}),
	}
	_, err := quantile.Solve(emptySparseStore(t, 2), emptySparseStore(t, 2), model, []int{0}, quantile.GEQ, []float64{0.5})
	require.ErrorIs(t, err, quantile.ErrBadPartition)
}

func TestSolveEmptyStatesOfInterest(t *testing.T) {
	model := mdpvec.ModelVectors{
		X0:           denseVector(t, 0.5),
		StateRewards: denseVector(t, 0),
		MaxReward:    denseVector(t, 0),
		Infinity:     denseVector(t, 0.5),
		One:          mdpvec.NewBitset(1),
		Zero:         mdpvec.NewBitset(1),
	}
	results, err := quantile.Solve(emptySparseStore(t, 1), emptySparseStore(t, 1), model, nil, quantile.GEQ, []float64{0.5})
	require.NoError(t, err)
	require.False(t, results[0.5].IsDecided(0))
}
