// Chain(n) builds a simple path 0->1->...->(n-1), interpreted as an MDP
// with a single choice per non-terminal state.
package mdpbuilder

import (
	"fmt"

	"github.com/arzani/rquantile/mdpmodel"
)

const minChainStates = 2

// Chain returns a Constructor building a path MDP of n states: each state
// i in [0, n-1) has one choice to i+1 with probability 1 and per-transition
// reward rTsa. State n-1 has no outgoing choice. Per-state reward/x0/
// infinity/partition membership come from the config options applied to
// BuildMDP.
func Chain(n int, rTsa int) Constructor {
	return func(b *mdpmodel.Builder, cfg *config) error {
		if n < minChainStates {
			return fmt.Errorf("Chain: n=%d < min=%d: %w", n, minChainStates, ErrTooFewStates)
		}

		for s := 0; s < n; s++ {
			if err := b.AddState(s, cfg.rewardOf(s), cfg.isOne(s), cfg.isZero(s), cfg.x0Of(s), cfg.infinityOf(s)); err != nil {
				return err
			}
		}

		for s := 0; s < n-1; s++ {
			c, err := b.AddChoice(s, 0)
			if err != nil {
				return err
			}
			if err := b.AddTransition(s, c, s+1, 1, rTsa); err != nil {
				return err
			}
		}

		return nil
	}
}
