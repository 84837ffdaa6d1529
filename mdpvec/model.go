package mdpvec

// ModelVectors bundles the immutable, per-state inputs the quantile solver
// borrows for the lifetime of a solve call: the zero-reward bounded base
// probability X0, state rewards, the per-state maximum transition reward
// (used to derive the window W), and the infinity vector X∞ giving the
// reward-unbounded optimal reachability probability.
//
// Every field is a Vector so either a Dense or RunLength representation may
// be used, depending on how sparse or uniform the underlying data is.
type ModelVectors struct {
	// X0 is the zero-reward bounded probability; seeds level 0 of the ring.
	X0 Vector

	// StateRewards is r_s : S → ℕ.
	StateRewards Vector

	// MaxReward is r_max(s), the maximum cumulative reward of any single
	// transition leaving s; W = max_s MaxReward(s).
	MaxReward Vector

	// Infinity is X∞ : S → ℝ≥0, the reward-unbounded optimal reachability
	// probability.
	Infinity Vector

	// One is the qualitative "one" partition O.
	One *Bitset

	// Zero is the qualitative "zero" partition Z.
	Zero *Bitset
}

// NumStates returns the size of the state space, derived from X0's length.
func (m ModelVectors) NumStates() int {
	return m.X0.Len()
}

// Window computes W = max_s MaxReward(s).
func (m ModelVectors) Window() int {
	w := 0
	n := m.MaxReward.Len()
	for s := 0; s < n; s++ {
		if r := int(m.MaxReward.At(s)); r > w {
			w = r
		}
	}

	return w
}
