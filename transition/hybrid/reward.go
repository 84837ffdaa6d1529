package hybrid

import "github.com/arzani/rquantile/transition"

// ProjectActionReward collapses one choice's per-transition action-reward
// annotations into a single constant r_ta. A model encoding may assign the
// action reward to every one of a choice's outgoing transitions before the
// choice-level constant is known; every entry must agree, or the choice's
// action reward is ill-defined and construction fails with
// transition.ErrNonConstantActionReward.
func ProjectActionReward(perTransition []int) (int, error) {
	if len(perTransition) == 0 {
		return 0, nil
	}
	r := perTransition[0]
	for _, v := range perTransition[1:] {
		if v != r {
			return 0, transition.ErrNonConstantActionReward
		}
	}

	return r, nil
}
