package quantile

import (
	"math"

	"github.com/arzani/rquantile/mdpvec"
	"github.com/arzani/rquantile/transition"
)

// InnerSolverState is the zero-reward inner solver's scratch state,
// preallocated once per Solve call and reused across outer iterations so
// the iteration loop stays allocation-free.
type InnerSolverState struct {
	y, yPrime []float64
	qBest     []float64
	qAny      []bool
}

// NewInnerSolverState allocates scratch buffers for a state space of size n.
func NewInnerSolverState(n int) *InnerSolverState {
	return &InnerSolverState{
		y:      make([]float64, n),
		yPrime: make([]float64, n),
		qBest:  make([]float64, n),
		qAny:   make([]bool, n),
	}
}

// sweepReport carries the final sweep count and residual, used by Driver for
// status logging.
type sweepReport struct {
	sweeps   int
	residual float64
}

// Solve runs the Bellman least-fixed-point over T⁰ (store) with boundary
// values xPlus = x⁺_i. xPlus must already have every undefined entry
// replaced by 0 and O/Z pinning applied (the positive-reward step
// guarantees both). xPlusDefined marks which states had a defined x⁺_i
// before that replacement, needed by the merge rule.
//
// On return, xPlus is overwritten in place with the converged y. A
// *NonConvergenceError is returned if KMax sweeps elapse without meeting
// epsilon.
func (st *InnerSolverState) Solve(
	store transition.Store,
	xPlus *mdpvec.Dense,
	xPlusDefined *mdpvec.Bitset,
	one, zero *mdpvec.Bitset,
	mode Mode,
	cfg Config,
	onSweep func(sweep int, residual float64),
) (sweepReport, error) {
	n := xPlus.Len()
	copy(st.y, xPlus.Raw())

	hasZeroChoice := false
	probe := func(s, c, rTa int, trs []transition.Transition) error {
		hasZeroChoice = true

		return nil
	}
	if err := store.ForEachZero(probe); err != nil {
		return sweepReport{}, err
	}
	if !hasZeroChoice {
		return sweepReport{sweeps: 0, residual: 0}, nil
	}

	for sweep := 1; sweep <= cfg.KMax; sweep++ {
		for s := 0; s < n; s++ {
			st.qAny[s] = false
		}

		err := store.ForEachZero(func(s, c, rTa int, trs []transition.Transition) error {
			q := 0.0
			for _, tr := range trs {
				q += tr.Prob * st.y[tr.Successor]
			}
			if !st.qAny[s] {
				st.qAny[s] = true
				st.qBest[s] = q
			} else if mode == Max {
				if q > st.qBest[s] {
					st.qBest[s] = q
				}
			} else if q < st.qBest[s] {
				st.qBest[s] = q
			}

			return nil
		})
		if err != nil {
			return sweepReport{}, err
		}

		for s := 0; s < n; s++ {
			switch {
			case one.Test(s):
				st.yPrime[s] = 1
			case zero.Test(s):
				st.yPrime[s] = 0
			case xPlusDefined.Test(s):
				if st.qAny[s] {
					st.yPrime[s] = optimize(mode, st.qBest[s], xPlus.At(s))
				} else {
					st.yPrime[s] = xPlus.At(s)
				}
			case st.qAny[s]:
				st.yPrime[s] = st.qBest[s]
			default:
				st.yPrime[s] = 0
			}
		}

		residual := convergenceMeasure(st.y, st.yPrime, cfg.RelativeConvergence)
		if onSweep != nil {
			onSweep(sweep, residual)
		}

		st.y, st.yPrime = st.yPrime, st.y

		if residual < cfg.Epsilon {
			copy(xPlus.Raw(), st.y)

			return sweepReport{sweeps: sweep, residual: residual}, nil
		}
	}

	residual := convergenceMeasure(st.y, st.yPrime, cfg.RelativeConvergence)

	return sweepReport{}, &NonConvergenceError{
		Level:    -1, // filled in by Driver, which knows the outer level
		Sweeps:   cfg.KMax,
		Residual: residual,
		Epsilon:  cfg.Epsilon,
	}
}

// optimize returns max(a,b) or min(a,b) per mode.
func optimize(mode Mode, a, b float64) float64 {
	if mode == Max {
		if a > b {
			return a
		}

		return b
	}
	if a < b {
		return a
	}

	return b
}

// convergenceMeasure computes ‖y'-y‖∞ (absolute) or the relative variant
// max_s |y'(s)-y(s)|/y'(s).
func convergenceMeasure(y, yPrime []float64, relative bool) float64 {
	max := 0.0
	for s := range y {
		d := math.Abs(yPrime[s] - y[s])
		if relative && yPrime[s] != 0 {
			d /= math.Abs(yPrime[s])
		}
		if d > max {
			max = d
		}
	}

	return max
}
