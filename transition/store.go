package transition

// Transition is one outgoing edge of a choice: successor state, transition
// probability, and the per-transition reward increment r_tsa (always 0 for
// a T⁰ visit).
type Transition struct {
	Successor int
	Prob      float64
	RTsa      int
}

// ChoiceVisitor is invoked once per choice (s, c), in grouped order (first
// by state s, then by choice c within s), with the choice's action reward
// r_ta(s,c) and its full outgoing transition list. A non-nil return aborts
// the traversal and is propagated to the caller of
// ForEachPositive/ForEachZero. The transitions slice is only valid for the
// duration of the call; implementations may reuse its backing array for the
// next choice visited.
type ChoiceVisitor func(s, c int, rTa int, transitions []Transition) error

// Store is the back-end-agnostic view of T⁺ and T⁰ the quantile solver
// iterates over. Two back-ends implement it: transition/sparse and
// transition/hybrid.
type Store interface {
	// ForEachPositive visits every choice of T⁺, grouped by state then by
	// choice.
	ForEachPositive(visit ChoiceVisitor) error

	// ForEachZero visits every choice of T⁰, grouped by state then by
	// choice. r_ta and r_tsa are always 0 for every T⁰ choice, but are still
	// passed through ChoiceVisitor for a uniform signature.
	ForEachZero(visit ChoiceVisitor) error

	// NumStates returns n, the size of the state space.
	NumStates() int

	// MaxWindow returns the largest per-choice reward contribution
	// (r_ta + r_tsa) observed at construction time. It excludes state
	// rewards; Solve takes W as the maximum of this and the model's
	// per-state max-reward vector.
	MaxWindow() int
}
