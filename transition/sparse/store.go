package sparse

import (
	"fmt"
	"math"

	"github.com/arzani/rquantile/transition"
)

// Store is the row-grouped sparse transition.Store back-end.
//
// rowOffsets[s]..rowOffsets[s+1] indexes into choiceOffsets for the choices
// of state s. choiceOffsets[c]..choiceOffsets[c+1] indexes into cols/probs
// for the transitions of choice c. rewardOffsets/rewardCols/rewardVals are a
// compatible sparse matrix aligned to the same choice structure but holding
// only the non-zero r_tsa entries; a successor present in cols but absent
// from rewardCols for that choice has r_tsa = 0.
type Store struct {
	numStates int
	window    int

	rowOffsets    []int
	choiceOffsets []int
	cols          []int
	probs         []float64
	actionRewards []int

	rewardOffsets []int
	rewardCols    []int
	rewardVals    []int

	// scratch backs the Transition slice handed to ChoiceVisitor. It is
	// reused across every forEach call (and so across every sweep of the
	// inner solver) instead of being reallocated per call.
	scratch []transition.Transition
}

// NumStates returns n, the size of the state space.
func (s *Store) NumStates() int { return s.numStates }

// MaxWindow returns the largest transition-level reward contribution
// (r_ta + r_tsa) this store observed at construction; a consistency check
// against the externally supplied per-state max-reward vector, not a
// substitute for it (the model vectors supply that vector separately).
func (s *Store) MaxWindow() int { return s.window }

// ForEachPositive visits every choice in T⁺, grouped by state then choice.
func (s *Store) ForEachPositive(visit transition.ChoiceVisitor) error {
	return s.forEach(visit)
}

// ForEachZero visits every choice in T⁰, grouped by state then choice.
// r_ta and r_tsa are always 0 by construction for a zero-reward store.
func (s *Store) ForEachZero(visit transition.ChoiceVisitor) error {
	return s.forEach(visit)
}

// forEach is the shared traversal for both matrices; sparse.Store always
// represents a single matrix (either T⁺ or T⁰), so ForEachPositive and
// ForEachZero on the same instance are equivalent. Driver code holds two
// Store instances, one per matrix.
func (s *Store) forEach(visit transition.ChoiceVisitor) error {
	if s.scratch == nil {
		s.scratch = make([]transition.Transition, 0, 8)
	}
	for state := 0; state < s.numStates; state++ {
		for c := s.rowOffsets[state]; c < s.rowOffsets[state+1]; c++ {
			s.scratch = s.scratch[:0]
			lo, hi := s.choiceOffsets[c], s.choiceOffsets[c+1]
			rLo, rHi := s.rewardOffsets[c], s.rewardOffsets[c+1]
			ri := rLo
			for t := lo; t < hi; t++ {
				col := s.cols[t]
				rTsa := 0
				// Merge on successor column: reward entries are sorted by
				// column within a choice, same as transition columns.
				for ri < rHi && s.rewardCols[ri] < col {
					ri++
				}
				if ri < rHi && s.rewardCols[ri] == col {
					rTsa = s.rewardVals[ri]
				}
				s.scratch = append(s.scratch, transition.Transition{
					Successor: col,
					Prob:      s.probs[t],
					RTsa:      rTsa,
				})
			}
			if err := visit(state, c-s.rowOffsets[state], s.actionRewards[c], s.scratch); err != nil {
				return err
			}
		}
	}

	return nil
}

// errorf wraps an underlying error with sparse-package context.
func errorf(format string, args ...interface{}) error {
	return fmt.Errorf("sparse: "+format, args...)
}

// validateProbabilityMass checks Σ p = 1 for a choice's transitions within
// a small tolerance.
func validateProbabilityMass(transitions []transition.Transition) error {
	sum := 0.0
	for _, tr := range transitions {
		sum += tr.Prob
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return errorf("%w: got %g", transition.ErrProbabilityMassInvalid, sum)
	}

	return nil
}
