package mdpbuilder_test

import (
	"testing"

	"github.com/arzani/rquantile/mdpbuilder"
	"github.com/arzani/rquantile/transition"
	"github.com/stretchr/testify/require"
)

func TestChainBuildsLinearTopology(t *testing.T) {
	model, tPlus, _, err := mdpbuilder.BuildMDP(
		[]mdpbuilder.Option{mdpbuilder.WithOneState(2)},
		mdpbuilder.Chain(3, 1),
	)
	require.NoError(t, err)
	require.Equal(t, 3, model.NumStates())
	require.True(t, model.One.Test(2))
	require.Equal(t, 1, tPlus.MaxWindow())
}

func TestChainRejectsTooFewStates(t *testing.T) {
	_, _, _, err := mdpbuilder.BuildMDP(nil, mdpbuilder.Chain(1, 1))
	require.ErrorIs(t, err, mdpbuilder.ErrTooFewStates)
}

func TestCycleIsAllZeroReward(t *testing.T) {
	_, tPlus, tZero, err := mdpbuilder.BuildMDP(nil, mdpbuilder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 0, tPlus.MaxWindow())
	require.Equal(t, 4, tZero.NumStates())
}

func TestCompleteProducesNMinusOneChoicesPerState(t *testing.T) {
	_, tPlus, _, err := mdpbuilder.BuildMDP(
		[]mdpbuilder.Option{mdpbuilder.WithOneState(0)},
		mdpbuilder.Complete(4, 1),
	)
	require.NoError(t, err)
	choicesPerState := make(map[int]int)
	require.NoError(t, tPlus.ForEachPositive(func(s, c, rTa int, trs []transition.Transition) error {
		choicesPerState[s]++
		return nil
	}))
	for s := 0; s < 4; s++ {
		require.Equal(t, 3, choicesPerState[s])
	}
}

func TestRandomSparseIsDeterministicUnderSeed(t *testing.T) {
	optsA := []mdpbuilder.Option{mdpbuilder.WithSeed(42), mdpbuilder.WithOneState(0)}
	optsB := []mdpbuilder.Option{mdpbuilder.WithSeed(42), mdpbuilder.WithOneState(0)}

	modelA, tPlusA, _, err := mdpbuilder.BuildMDP(optsA, mdpbuilder.RandomSparse(6, 0.3, 1))
	require.NoError(t, err)
	modelB, tPlusB, _, err := mdpbuilder.BuildMDP(optsB, mdpbuilder.RandomSparse(6, 0.3, 1))
	require.NoError(t, err)

	require.Equal(t, modelA.NumStates(), modelB.NumStates())
	require.Equal(t, tPlusA.MaxWindow(), tPlusB.MaxWindow())
}

func TestRandomSparseRejectsBadDensity(t *testing.T) {
	_, _, _, err := mdpbuilder.BuildMDP(nil, mdpbuilder.RandomSparse(3, 0, 1))
	require.ErrorIs(t, err, mdpbuilder.ErrInvalidDensity)
}
