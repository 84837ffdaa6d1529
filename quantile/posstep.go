package quantile

import (
	"github.com/arzani/rquantile/mdpvec"
	"github.com/arzani/rquantile/transition"
)

// PositiveStepState is the positive-reward step's scratch state,
// preallocated once per Solve call and reused across outer iterations so
// the iteration loop stays allocation-free.
type PositiveStepState struct {
	qBest []float64
	qAny  []bool
}

// NewPositiveStepState allocates scratch buffers for a state space of size n.
func NewPositiveStepState(n int) *PositiveStepState {
	return &PositiveStepState{
		qBest: make([]float64, n),
		qAny:  make([]bool, n),
	}
}

// Compute evaluates x⁺_i for outer level i: for every choice (s, c) in T⁺,
// it forms Q(s,c) = Σ_s' p(s,c,s')·V(i - r(s,c,s'), s'), where
// r(s,c,s') = stateRewards(s) + r_ta(s,c) + r_tsa(s,c,s') and V reads the
// Ring (0 for any level outside the window). It then combines Q across
// choices per mode (max/min), writes the result into vals, marks defined
// states in defined, and unconditionally applies O/Z pinning.
//
// vals and defined are caller-owned scratch (typically a Ring slot and a
// per-iteration Bitset); Compute does not allocate.
func (st *PositiveStepState) Compute(
	store transition.Store,
	ring *Ring,
	i int,
	mode Mode,
	stateRewards mdpvec.Vector,
	one, zero *mdpvec.Bitset,
	vals *mdpvec.Dense,
	defined *mdpvec.Bitset,
) error {
	n := vals.Len()
	for s := 0; s < n; s++ {
		st.qAny[s] = false
	}

	err := store.ForEachPositive(func(s, c, rTa int, trs []transition.Transition) error {
		q := 0.0
		rBase := int(stateRewards.At(s)) + rTa
		for _, tr := range trs {
			level := i - rBase - tr.RTsa
			q += tr.Prob * ring.Get(level).At(tr.Successor)
		}
		if !st.qAny[s] {
			st.qAny[s] = true
			st.qBest[s] = q
		} else if mode == Max {
			if q > st.qBest[s] {
				st.qBest[s] = q
			}
		} else {
			if q < st.qBest[s] {
				st.qBest[s] = q
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	for s := 0; s < n; s++ {
		if st.qAny[s] {
			_ = vals.Set(s, st.qBest[s]) // s < n == vals.Len(), always in bounds
			defined.Set(s)
		}
	}

	// Pinning is applied unconditionally and last.
	for s := 0; s < n; s++ {
		if one.Test(s) {
			_ = vals.Set(s, 1)
			defined.Set(s)
		} else if zero.Test(s) {
			_ = vals.Set(s, 0)
			defined.Set(s)
		}
	}

	return nil
}
