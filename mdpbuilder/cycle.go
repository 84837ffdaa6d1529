// Cycle(n) builds a closed ring 0->1->...->(n-1)->0, a zero-reward MDP
// cycle used to exercise the zero-reward inner solver's convergence over a
// loop.
package mdpbuilder

import (
	"fmt"

	"github.com/arzani/rquantile/mdpmodel"
)

const minCycleStates = 2

// Cycle returns a Constructor building a zero-reward cycle MDP of n states:
// each state has one choice to (s+1)%n, probability 1, reward 0 throughout.
func Cycle(n int) Constructor {
	return func(b *mdpmodel.Builder, cfg *config) error {
		if n < minCycleStates {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleStates, ErrTooFewStates)
		}

		for s := 0; s < n; s++ {
			if err := b.AddState(s, cfg.rewardOf(s), cfg.isOne(s), cfg.isZero(s), cfg.x0Of(s), cfg.infinityOf(s)); err != nil {
				return err
			}
		}

		for s := 0; s < n; s++ {
			c, err := b.AddChoice(s, 0)
			if err != nil {
				return err
			}
			if err := b.AddTransition(s, c, (s+1)%n, 1, 0); err != nil {
				return err
			}
		}

		return nil
	}
}
