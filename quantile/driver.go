package quantile

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/arzani/rquantile/mdpvec"
	"github.com/arzani/rquantile/trace"
	"github.com/arzani/rquantile/transition"
)

// Solve is the single entry point of the quantile fixed-point solver: given
// the two transition stores, the model's immutable vectors, the states of
// interest, a threshold operator, and a set of thresholds, it drives the
// outer iteration until every state of interest has a decided Q_t for every
// threshold.
//
// It returns one *mdpvec.ResultVector per distinct threshold. The canonical
// external interface hands back only the vector for the numerically largest
// threshold (see Largest); this package keeps the full map because callers
// that query several thresholds at once want each one's crossing checked
// independently.
func Solve(
	tPlus, tZero transition.Store,
	model mdpvec.ModelVectors,
	statesOfInterest []int,
	op Operator,
	thresholds []float64,
	opts ...Option,
) (map[float64]*mdpvec.ResultVector, error) {
	setupStart := time.Now()

	if len(thresholds) == 0 {
		return nil, ErrNoThresholds
	}
	if !model.One.Disjoint(model.Zero) {
		return nil, ErrBadPartition
	}
	if err := validateIntegerRewards(model); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	n := model.NumStates()
	results := make(map[float64]*mdpvec.ResultVector, len(thresholds))
	for _, t := range thresholds {
		results[t] = mdpvec.NewResultVector(n)
	}

	if len(statesOfInterest) == 0 {
		return results, nil
	}

	w := model.Window()
	if sw := tPlus.MaxWindow(); sw > w {
		w = sw
	}
	if sw := tZero.MaxWindow(); sw > w {
		w = sw
	}

	ring, err := NewRing(n, w)
	if err != nil {
		return nil, fmt.Errorf("quantile: allocating level ring: %w", err)
	}

	x0, err := mdpvec.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("quantile: allocating base vector: %w", err)
	}
	for s := 0; s < n; s++ {
		_ = x0.Set(s, model.X0.At(s)) // s < n == x0.Len(), always in bounds
	}
	if err := ring.StoreLevelZero(x0); err != nil {
		return nil, fmt.Errorf("quantile: seeding level 0: %w", err)
	}

	// Infinity check: a state whose unbounded-reward optimal probability
	// already fails the threshold can never cross it at any finite i.
	for _, s := range statesOfInterest {
		infVal := model.Infinity.At(s)
		for _, t := range thresholds {
			if results[t].IsDecided(s) {
				continue
			}
			if op.Complement().Satisfies(infVal, t) {
				results[t].Decide(s, math.Inf(1))
			}
		}
	}

	// Zero check: a state whose level-0 probability already satisfies the
	// threshold is decided at i = 0, independent of the matrices.
	for _, s := range statesOfInterest {
		x0Val := x0.At(s)
		for _, t := range thresholds {
			if results[t].IsDecided(s) {
				continue
			}
			if op.Satisfies(x0Val, t) {
				results[t].Decide(s, 0)
			}
		}
	}

	active := remainingStates(statesOfInterest, results, thresholds)
	if len(active) == 0 {
		return results, nil
	}

	posState := NewPositiveStepState(n)
	innerState := NewInnerSolverState(n)
	defined := mdpvec.NewBitset(n)

	var exporter *trace.Exporter
	if cfg.ExportIntermediate != nil {
		exporter = trace.NewExporter(cfg.ExportIntermediate)
	}

	logger := newStatusLogger(cfg.Logger, cfg.LogEvery, setupStart)
	loopStart := time.Now()
	iterations := 0

	for i := 1; ; i++ {
		iterations = i
		vi := ring.Advance()
		vi.Fill(0)
		defined.Clear()

		if err := posState.Compute(tPlus, ring, i, cfg.Mode, model.StateRewards, model.One, model.Zero, vi, defined); err != nil {
			return nil, fmt.Errorf("quantile: positive-reward step at level %d: %w", i, err)
		}

		if exporter != nil {
			if err := exporter.AddVector(append([]float64(nil), vi.Raw()...), trace.TypePositive); err != nil {
				return nil, err
			}
		}

		report, err := innerState.Solve(tZero, vi, defined, model.One, model.Zero, cfg.Mode, cfg, func(sweep int, residual float64) {
			logger.maybeLog(i, sweep, residual)
		})
		if err != nil {
			if nc, ok := err.(*NonConvergenceError); ok {
				nc.Level = i
			}

			return nil, err
		}

		if exporter != nil {
			if err := exporter.AddVector(append([]float64(nil), vi.Raw()...), trace.TypeConverged); err != nil {
				return nil, err
			}
		}

		for _, s := range active {
			val := vi.At(s)
			for _, t := range thresholds {
				if results[t].IsDecided(s) {
					continue
				}
				if op.Satisfies(val, t) {
					results[t].Decide(s, float64(i))
				}
			}
		}

		active = remainingStates(active, results, thresholds)
		logger.finalSweep(i, report.sweeps, report.residual)

		if len(active) == 0 {
			break
		}
	}

	if exporter != nil {
		if err := exporter.Close(); err != nil {
			return nil, err
		}
	}

	logger.summary(iterations, loopStart)

	return results, nil
}

// validateIntegerRewards rejects a model whose state rewards or per-state
// maximum transition reward are not whole numbers. Rewards are defined over
// the integers throughout this package; mdpvec.Dense/RunLength store them as
// float64 for a uniform Vector interface, so a model built by hand (rather
// than through mdpmodel.Builder, which only ever accepts int rewards) could
// otherwise smuggle in a fractional value that later truncates silently.
func validateIntegerRewards(model mdpvec.ModelVectors) error {
	n := model.NumStates()
	for s := 0; s < n; s++ {
		if r := model.StateRewards.At(s); r != math.Trunc(r) {
			return fmt.Errorf("%w: state reward at %d is %g", transition.ErrNonIntegerReward, s, r)
		}
		if r := model.MaxReward.At(s); r != math.Trunc(r) {
			return fmt.Errorf("%w: max reward at %d is %g", transition.ErrNonIntegerReward, s, r)
		}
	}

	return nil
}

// Largest returns the result vector for the numerically largest threshold,
// matching the canonical external interface ("Q_t for the numerically
// largest t is the return value; all other Q_t are freed").
func Largest(results map[float64]*mdpvec.ResultVector, thresholds []float64) *mdpvec.ResultVector {
	sorted := append([]float64(nil), thresholds...)
	sort.Float64s(sorted)

	return results[sorted[len(sorted)-1]]
}

// remainingStates filters states whose every threshold is now decided.
func remainingStates(states []int, results map[float64]*mdpvec.ResultVector, thresholds []float64) []int {
	out := states[:0:0]
	for _, s := range states {
		decided := true
		for _, t := range thresholds {
			if !results[t].IsDecided(s) {
				decided = false

				break
			}
		}
		if !decided {
			out = append(out, s)
		}
	}

	return out
}

// statusLogger emits the status log lines. The in-solver progress line
// (maybeLog) is emitted at most once every interval, to avoid flooding the
// log during fast-converging runs; the per-outer-iteration line (finalSweep)
// and the closing summary are emitted unconditionally.
type statusLogger struct {
	logger     *log.Logger
	interval   time.Duration
	setupStart time.Time
	last       time.Time
}

func newStatusLogger(l *log.Logger, interval time.Duration, setupStart time.Time) *statusLogger {
	return &statusLogger{logger: l, interval: interval, setupStart: setupStart}
}

func (s *statusLogger) maybeLog(outer, inner int, residual float64) {
	if s.logger == nil {
		return
	}
	now := time.Now()
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		return
	}
	s.last = now
	s.logger.Printf("quantile: outer=%d inner=%d residual=%g elapsed=%s", outer, inner, residual, now.Sub(s.setupStart))
}

func (s *statusLogger) finalSweep(outer, sweeps int, residual float64) {
	if s.logger == nil {
		return
	}
	s.logger.Printf("quantile: outer=%d converged after %d sweep(s), residual=%g", outer, sweeps, residual)
}

func (s *statusLogger) summary(iterations int, loopStart time.Time) {
	if s.logger == nil {
		return
	}
	now := time.Now()
	avg := time.Duration(0)
	if iterations > 0 {
		avg = now.Sub(loopStart) / time.Duration(iterations)
	}
	s.logger.Printf("quantile: solve finished: %d outer iteration(s) in %s, %s per iteration on average, setup %s",
		iterations, now.Sub(s.setupStart), avg, loopStart.Sub(s.setupStart))
}
