package sparse

import (
	"sort"

	"github.com/arzani/rquantile/transition"
)

// Builder accumulates choices state-by-state and produces an immutable
// Store. Grounded on matrix/impl_builder.go's deterministic, offset-table
// construction discipline: no map iteration, stable ordering throughout.
//
// Stage 1 (Validate): each AddChoice call checks the state index and the
// choice's probability mass.
// Stage 2 (Prepare): Build sorts each choice's transitions by successor
// column and separates zero-reward transitions out of the reward arrays.
// Stage 3 (Finalize): Build emits the four parallel arrays plus the derived
// window.
type Builder struct {
	numStates int
	perState  [][]choiceSpec
}

type choiceSpec struct {
	rTa         int
	transitions []transition.Transition
}

// NewBuilder allocates a Builder for a state space of the given size.
func NewBuilder(numStates int) *Builder {
	return &Builder{
		numStates: numStates,
		perState:  make([][]choiceSpec, numStates),
	}
}

// AddChoice appends one choice (s, c) with its action reward and outgoing
// transitions. Choices are numbered in the order added, per state.
// Complexity: O(k) for the probability-mass summation and the copy; sorting
// happens once in Build.
func (b *Builder) AddChoice(s int, rTa int, transitions []transition.Transition) error {
	if s < 0 || s >= b.numStates {
		return errorf("%w: state %d", transition.ErrUnknownState, s)
	}
	if err := validateProbabilityMass(transitions); err != nil {
		return err
	}

	cp := make([]transition.Transition, len(transitions))
	copy(cp, transitions)
	b.perState[s] = append(b.perState[s], choiceSpec{rTa: rTa, transitions: cp})

	return nil
}

// Build finalizes the accumulated choices into an immutable sparse.Store.
// Complexity: O(n + numChoices log d + nnz) where d is the max choice
// out-degree (per-choice sort).
func (b *Builder) Build() (*Store, error) {
	s := &Store{numStates: b.numStates}

	s.rowOffsets = make([]int, b.numStates+1)
	numChoices := 0
	for state := 0; state < b.numStates; state++ {
		numChoices += len(b.perState[state])
	}

	s.choiceOffsets = make([]int, numChoices+1)
	s.actionRewards = make([]int, numChoices)
	s.rewardOffsets = make([]int, numChoices+1)

	nnz, rnnz := 0, 0
	for _, specs := range b.perState {
		for _, cs := range specs {
			nnz += len(cs.transitions)
			for _, tr := range cs.transitions {
				if tr.RTsa != 0 {
					rnnz++
				}
			}
		}
	}
	s.cols = make([]int, 0, nnz)
	s.probs = make([]float64, 0, nnz)
	s.rewardCols = make([]int, 0, rnnz)
	s.rewardVals = make([]int, 0, rnnz)

	c := 0
	window := 0
	for state := 0; state < b.numStates; state++ {
		s.rowOffsets[state] = c
		for _, cs := range b.perState[state] {
			sorted := make([]transition.Transition, len(cs.transitions))
			copy(sorted, cs.transitions)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i].Successor < sorted[j].Successor })

			s.choiceOffsets[c] = len(s.cols)
			s.actionRewards[c] = cs.rTa
			s.rewardOffsets[c] = len(s.rewardCols)

			maxRTsa := 0
			for _, tr := range sorted {
				s.cols = append(s.cols, tr.Successor)
				s.probs = append(s.probs, tr.Prob)
				if tr.RTsa != 0 {
					s.rewardCols = append(s.rewardCols, tr.Successor)
					s.rewardVals = append(s.rewardVals, tr.RTsa)
				}
				if tr.RTsa > maxRTsa {
					maxRTsa = tr.RTsa
				}
			}
			if cs.rTa+maxRTsa > window {
				window = cs.rTa + maxRTsa
			}
			c++
		}
		s.rowOffsets[state+1] = c
	}
	s.choiceOffsets[numChoices] = len(s.cols)
	s.rewardOffsets[numChoices] = len(s.rewardCols)
	s.window = window

	return s, nil
}
