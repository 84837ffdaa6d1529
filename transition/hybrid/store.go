package hybrid

import "github.com/arzani/rquantile/transition"

// Store is the hybrid transition.Store back-end: one reduced decision
// diagram for T⁺ and one for T⁰.
type Store struct {
	numStates int
	window    int
	positive  *dd
	zero      *dd

	// scratch backs the Transition slice handed to ChoiceVisitor by walkDD.
	// Reused across every leaf visited and across every ForEachPositive/
	// ForEachZero call so repeated sweeps over the diagram do not reallocate.
	scratch []transition.Transition
}

// NumStates returns n, the size of the state space.
func (s *Store) NumStates() int { return s.numStates }

// MaxWindow returns the largest transition-level reward contribution this
// store observed at construction (see sparse.Store.MaxWindow's doc comment
// for why this is a consistency check, not the authoritative W).
func (s *Store) MaxWindow() int { return s.window }

// ForEachPositive visits every choice of T⁺, grouped by state then choice.
func (s *Store) ForEachPositive(visit transition.ChoiceVisitor) error {
	return s.walkDD(s.positive, visit)
}

// ForEachZero visits every choice of T⁰, grouped by state then choice.
func (s *Store) ForEachZero(visit transition.ChoiceVisitor) error {
	return s.walkDD(s.zero, visit)
}

// walkDD adapts dd.walk's callback shape to transition.ChoiceVisitor's
// error-returning one, stopping at the first error. It fills s.scratch
// (grown, never reallocated below its current capacity) instead of
// allocating a fresh Transition slice per leaf.
func (s *Store) walkDD(d *dd, visit transition.ChoiceVisitor) error {
	var firstErr error
	d.walk(func(state, choice, rTa int, b *block) {
		if firstErr != nil {
			return
		}
		if cap(s.scratch) < b.len() {
			s.scratch = make([]transition.Transition, b.len())
		}
		s.scratch = s.scratch[:b.len()]
		for i := 0; i < b.len(); i++ {
			s.scratch[i] = transition.Transition{
				Successor: b.cols[i],
				Prob:      b.probAt(i),
				RTsa:      b.rTsa[i],
			}
		}
		firstErr = visit(state, choice, rTa, s.scratch)
	})

	return firstErr
}

// StoreBuilder accumulates choices for both T⁺ and T⁰ and produces a Store.
type StoreBuilder struct {
	numStates int
	pos       *Builder
	zero      *Builder
	window    int
}

// NewStoreBuilder allocates a StoreBuilder for a state space of the given
// size.
func NewStoreBuilder(numStates int) *StoreBuilder {
	return &StoreBuilder{
		numStates: numStates,
		pos:       NewBuilder(numStates),
		zero:      NewBuilder(numStates),
	}
}

// AddPositive inserts one T⁺ (state, choice) row.
func (sb *StoreBuilder) AddPositive(spec ChoiceSpec) error {
	rTa, err := sb.pos.AddChoice(spec)
	if err != nil {
		return err
	}
	sb.trackWindow(rTa, spec.RTsa)

	return nil
}

// AddZero inserts one T⁰ (state, choice) row. ActionRewards and every RTsa
// are expected to be 0 by construction; the caller (mdpmodel) is responsible
// for routing zero-reward choices here.
func (sb *StoreBuilder) AddZero(spec ChoiceSpec) error {
	_, err := sb.zero.AddChoice(spec)

	return err
}

func (sb *StoreBuilder) trackWindow(rTa int, rTsa []int) {
	maxRTsa := 0
	for _, r := range rTsa {
		if r > maxRTsa {
			maxRTsa = r
		}
	}
	if rTa+maxRTsa > sb.window {
		sb.window = rTa + maxRTsa
	}
}

// Build finalizes both matrices into an immutable Store.
func (sb *StoreBuilder) Build() *Store {
	return &Store{
		numStates: sb.numStates,
		window:    sb.window,
		positive:  sb.pos.Build(),
		zero:      sb.zero.Build(),
	}
}
