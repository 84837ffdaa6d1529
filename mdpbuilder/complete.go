// Complete(n) builds a complete-choice MDP: every state has one choice per
// other state, each deterministically reaching it.
package mdpbuilder

import (
	"fmt"

	"github.com/arzani/rquantile/mdpmodel"
)

const minCompleteStates = 2

// Complete returns a Constructor building a complete-choice MDP of n
// states: state s has n-1 choices, one per successor t != s, each with
// probability 1 and per-transition reward rTsa.
func Complete(n int, rTsa int) Constructor {
	return func(b *mdpmodel.Builder, cfg *config) error {
		if n < minCompleteStates {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteStates, ErrTooFewStates)
		}

		for s := 0; s < n; s++ {
			if err := b.AddState(s, cfg.rewardOf(s), cfg.isOne(s), cfg.isZero(s), cfg.x0Of(s), cfg.infinityOf(s)); err != nil {
				return err
			}
		}

		for s := 0; s < n; s++ {
			for t := 0; t < n; t++ {
				if t == s {
					continue
				}
				c, err := b.AddChoice(s, 0)
				if err != nil {
					return err
				}
				if err := b.AddTransition(s, c, t, 1, rTsa); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
