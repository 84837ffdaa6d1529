// RandomSparse(n, density) runs a Bernoulli(density) trial per ordered
// state pair, deterministic under a fixed rng, with a guaranteed fallback
// edge so no state is left without an outgoing choice.
package mdpbuilder

import (
	"fmt"
	"math/rand"

	"github.com/arzani/rquantile/mdpmodel"
)

const minRandomSparseStates = 2

// RandomSparse returns a Constructor building an MDP of n states where each
// ordered pair (s, t), s != t, becomes a single-transition choice with
// probability density (Bernoulli trial under cfg's rng, or a source seeded
// with 1 if WithSeed was not applied). Every state that drew no
// choice falls back to a choice targeting (s+1)%n, so no state is left
// without an outgoing choice.
func RandomSparse(n int, density float64, rTsa int) Constructor {
	return func(b *mdpmodel.Builder, cfg *config) error {
		if n < minRandomSparseStates {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomSparseStates, ErrTooFewStates)
		}
		if density <= 0 || density > 1 {
			return fmt.Errorf("RandomSparse: density=%g: %w", density, ErrInvalidDensity)
		}

		rng := cfg.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}

		for s := 0; s < n; s++ {
			if err := b.AddState(s, cfg.rewardOf(s), cfg.isOne(s), cfg.isZero(s), cfg.x0Of(s), cfg.infinityOf(s)); err != nil {
				return err
			}
		}

		hasChoice := make([]bool, n)
		for s := 0; s < n; s++ {
			for t := 0; t < n; t++ {
				if t == s {
					continue
				}
				if rng.Float64() >= density {
					continue
				}
				c, err := b.AddChoice(s, 0)
				if err != nil {
					return err
				}
				if err := b.AddTransition(s, c, t, 1, rTsa); err != nil {
					return err
				}
				hasChoice[s] = true
			}
		}

		for s := 0; s < n; s++ {
			if hasChoice[s] {
				continue
			}
			c, err := b.AddChoice(s, 0)
			if err != nil {
				return err
			}
			if err := b.AddTransition(s, c, (s+1)%n, 1, rTsa); err != nil {
				return err
			}
		}

		return nil
	}
}
