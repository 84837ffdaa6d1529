package mdpvec_test

import (
	"testing"

	"github.com/arzani/rquantile/mdpvec"
	"github.com/stretchr/testify/require"
)

func TestNewDenseInvalidLength(t *testing.T) {
	_, err := mdpvec.NewDense(0)
	require.ErrorIs(t, err, mdpvec.ErrInvalidDimensions)

	_, err = mdpvec.NewDense(-3)
	require.ErrorIs(t, err, mdpvec.ErrInvalidDimensions)
}

func TestDenseSetGet(t *testing.T) {
	d, err := mdpvec.NewDense(3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 0.5))
	require.Equal(t, 0.5, d.At(1))
	require.Equal(t, 3, d.Len())
}

func TestDenseSetOutOfBounds(t *testing.T) {
	d, err := mdpvec.NewDense(2)
	require.NoError(t, err)

	err = d.Set(-1, 1.0)
	require.ErrorIs(t, err, mdpvec.ErrIndexOutOfBounds)

	err = d.Set(2, 1.0)
	require.ErrorIs(t, err, mdpvec.ErrIndexOutOfBounds)
}

func TestDenseAtOutOfBoundsReturnsZero(t *testing.T) {
	d, err := mdpvec.NewDense(2)
	require.NoError(t, err)

	require.Equal(t, 0.0, d.At(-1))
	require.Equal(t, 0.0, d.At(5))
}

func TestDenseFillAndClone(t *testing.T) {
	d, err := mdpvec.NewDense(4)
	require.NoError(t, err)
	d.Fill(2.5)

	clone := d.Clone()
	require.NoError(t, clone.Set(0, 9.0))
	require.Equal(t, 2.5, d.At(0))
	require.Equal(t, 9.0, clone.At(0))
}

func TestDenseCopyFromDimensionMismatch(t *testing.T) {
	a, err := mdpvec.NewDense(2)
	require.NoError(t, err)
	b, err := mdpvec.NewDense(3)
	require.NoError(t, err)

	err = a.CopyFrom(b)
	require.ErrorIs(t, err, mdpvec.ErrDimensionMismatch)
}

func TestRunLengthAt(t *testing.T) {
	rl, err := mdpvec.NewRunLength([]int{0, 3, 5}, []float64{1, 2, 3}, 7)
	require.NoError(t, err)

	require.Equal(t, 1.0, rl.At(0))
	require.Equal(t, 1.0, rl.At(2))
	require.Equal(t, 2.0, rl.At(3))
	require.Equal(t, 2.0, rl.At(4))
	require.Equal(t, 3.0, rl.At(5))
	require.Equal(t, 3.0, rl.At(6))
	require.Equal(t, 0.0, rl.At(100))
}

func TestRunLengthRejectsUnsortedStarts(t *testing.T) {
	_, err := mdpvec.NewRunLength([]int{0, 2, 2}, []float64{1, 2, 3}, 5)
	require.ErrorIs(t, err, mdpvec.ErrRunLengthNotSorted)

	_, err = mdpvec.NewRunLength([]int{1}, []float64{1}, 5)
	require.ErrorIs(t, err, mdpvec.ErrRunLengthNotSorted)
}

func TestNewConstantAndExpand(t *testing.T) {
	rl, err := mdpvec.NewConstant(4, 0.25)
	require.NoError(t, err)

	dense := rl.Expand()
	require.Equal(t, 4, dense.Len())
	for s := 0; s < 4; s++ {
		require.Equal(t, 0.25, dense.At(s))
	}
}

func TestBitsetBasics(t *testing.T) {
	b := mdpvec.NewBitsetFromIndices(10, []int{2, 7, 9})
	require.True(t, b.Test(2))
	require.True(t, b.Test(7))
	require.False(t, b.Test(3))
	require.Equal(t, 3, b.Count())
	require.Equal(t, []int{2, 7, 9}, b.Indices())
}

func TestBitsetDisjoint(t *testing.T) {
	a := mdpvec.NewBitsetFromIndices(10, []int{1, 2})
	b := mdpvec.NewBitsetFromIndices(10, []int{3, 4})
	require.True(t, a.Disjoint(b))

	b.Set(2)
	require.False(t, a.Disjoint(b))
}
