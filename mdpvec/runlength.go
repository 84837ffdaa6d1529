package mdpvec

import "sort"

// RunLength is a run-length-compressed vector: a sorted list of run
// boundaries and the value held over each run. Used for model vectors that
// are frequently near-constant across long ranges of the state space (a
// uniform state reward, or an infinity vector that is 0 almost everywhere).
//
// starts[k] is the first state index of run k; runs[k] is the value held on
// [starts[k], starts[k+1]) (or [starts[k], length) for the last run).
type RunLength struct {
	starts []int
	values []float64
	length int
}

// NewRunLength builds a RunLength vector from parallel starts/values slices
// and a total length. starts must be strictly increasing, begin at 0, and
// stay within [0, length).
// Stage 1 (Validate): non-empty, sorted, in-range boundaries.
// Complexity: O(k) where k = len(starts); At is O(log k) via binary search.
func NewRunLength(starts []int, values []float64, length int) (*RunLength, error) {
	if length <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(starts) == 0 || len(starts) != len(values) {
		return nil, ErrDimensionMismatch
	}
	if starts[0] != 0 {
		return nil, ErrRunLengthNotSorted
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] <= starts[i-1] || starts[i] >= length {
			return nil, ErrRunLengthNotSorted
		}
	}

	s := make([]int, len(starts))
	v := make([]float64, len(values))
	copy(s, starts)
	copy(v, values)

	return &RunLength{starts: s, values: v, length: length}, nil
}

// NewConstant returns a RunLength vector holding a single value across every
// state, the degenerate one-run case.
func NewConstant(length int, value float64) (*RunLength, error) {
	return NewRunLength([]int{0}, []float64{value}, length)
}

// At returns the value held at state index s via binary search over run
// starts. Out-of-range s returns 0, matching Dense's best-effort semantics.
func (r *RunLength) At(s int) float64 {
	if s < 0 || s >= r.length {
		return 0
	}
	// Find the last run whose start is <= s.
	i := sort.Search(len(r.starts), func(i int) bool { return r.starts[i] > s }) - 1

	return r.values[i]
}

// Len returns the number of states this vector covers.
func (r *RunLength) Len() int {
	return r.length
}

// Expand materializes the RunLength vector as a Dense vector. Used when a
// consumer needs Raw() hot-path access (the inner solver sweep) rather than
// the At(s) interface call.
func (r *RunLength) Expand() *Dense {
	data := make([]float64, r.length)
	for k, start := range r.starts {
		end := r.length
		if k+1 < len(r.starts) {
			end = r.starts[k+1]
		}
		v := r.values[k]
		for s := start; s < end; s++ {
			data[s] = v
		}
	}

	return &Dense{data: data}
}
