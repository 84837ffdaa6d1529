package transition

import "errors"

// Sentinel errors shared by every Store back-end.
var (
	// ErrNonIntegerReward indicates a reward projection (state, action, or
	// state-action reward) yielded a non-integer constant. Rewards are
	// defined over the integers, so this is a fatal input error.
	ErrNonIntegerReward = errors.New("transition: reward is not an integer")

	// ErrNonConstantActionReward indicates a per-choice action-reward
	// projection did not collapse to a single constant, a back-end
	// invariant violation in the hybrid back-end (every transition of one
	// choice must carry the same action reward r_ta).
	ErrNonConstantActionReward = errors.New("transition: action reward did not collapse to a constant")

	// ErrProbabilityMassInvalid indicates a choice's outgoing probabilities
	// did not sum to 1.
	ErrProbabilityMassInvalid = errors.New("transition: choice probabilities do not sum to 1")

	// ErrUnknownState indicates a state index outside [0, NumStates()).
	ErrUnknownState = errors.New("transition: unknown state index")

	// ErrDimensionMismatch indicates mismatched lengths between parallel
	// construction slices (e.g. cols/probs).
	ErrDimensionMismatch = errors.New("transition: dimension mismatch")
)
