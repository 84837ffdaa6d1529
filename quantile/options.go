package quantile

import (
	"io"
	"log"
	"time"
)

// Operator is a parsed threshold comparison kind, parsed once into an
// enumerated value so Solve never re-parses an operator string per state.
type Operator int

const (
	// LT is "<".
	LT Operator = iota
	// LEQ is "<=".
	LEQ
	// GT is ">".
	GT
	// GEQ is ">=".
	GEQ
)

// ParseOperator parses one of the exact strings "<", "<=", ">", ">=" into an
// Operator. Any other string is ErrUnknownOperator.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "<":
		return LT, nil
	case "<=":
		return LEQ, nil
	case ">":
		return GT, nil
	case ">=":
		return GEQ, nil
	default:
		return 0, ErrUnknownOperator
	}
}

// Satisfies reports whether value ~ threshold holds for this operator.
func (op Operator) Satisfies(value, threshold float64) bool {
	switch op {
	case LT:
		return value < threshold
	case LEQ:
		return value <= threshold
	case GT:
		return value > threshold
	case GEQ:
		return value >= threshold
	default:
		return false
	}
}

// Complement returns the negated operator used by the infinity check:
// e.g. for ">" the negation is "<=".
func (op Operator) Complement() Operator {
	switch op {
	case LT:
		return GEQ
	case LEQ:
		return GT
	case GT:
		return LEQ
	case GEQ:
		return LT
	default:
		return op
	}
}

// Mode selects min or max scheduler optimization, the direction used by the
// positive-reward step and the zero-reward inner solver.
type Mode int

const (
	// Max optimizes for the maximum reachability probability.
	Max Mode = iota
	// Min optimizes for the minimum reachability probability.
	Min
)

// Config configures a Solve call via the functional-options pattern.
type Config struct {
	Mode Mode

	// LowerBound and UpperBound select how excluded ring history is
	// surfaced; both currently contribute 0, so this flag is carried for
	// interface fidelity with an external verifier rather than changing
	// solver behavior.
	LowerBound bool

	Epsilon             float64
	RelativeConvergence bool
	KMax                int

	ExportIntermediate io.Writer

	Logger   *log.Logger
	LogEvery time.Duration
}

// Option configures a Config.
type Option func(*Config)

// WithMin selects the min-scheduler optimization direction.
func WithMin() Option { return func(c *Config) { c.Mode = Min } }

// WithMax selects the max-scheduler optimization direction (the default).
func WithMax() Option { return func(c *Config) { c.Mode = Max } }

// WithLowerBound selects lower-bound-mode surfacing of excluded history.
func WithLowerBound() Option { return func(c *Config) { c.LowerBound = true } }

// WithUpperBound selects upper-bound-mode surfacing of excluded history
// (the default).
func WithUpperBound() Option { return func(c *Config) { c.LowerBound = false } }

// WithEpsilon sets the zero-reward inner solver's convergence tolerance.
// Panics if eps <= 0: invalid option arguments fail fast at construction
// rather than surfacing as a Solve error.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("quantile: epsilon must be positive")
	}

	return func(c *Config) { c.Epsilon = eps }
}

// WithRelativeConvergence switches the inner solver's convergence check to
// relative error (max_s |y'(s)-y(s)|/y'(s)) instead of the default absolute
// max-norm.
func WithRelativeConvergence() Option {
	return func(c *Config) { c.RelativeConvergence = true }
}

// WithKMax sets the inner solver's maximum sweep count before declaring
// non-convergence. Panics if kMax <= 0.
func WithKMax(kMax int) Option {
	if kMax <= 0 {
		panic("quantile: KMax must be positive")
	}

	return func(c *Config) { c.KMax = kMax }
}

// WithExportIntermediate enables the optional iteration exporter, writing
// each finalized v_i to w.
func WithExportIntermediate(w io.Writer) Option {
	return func(c *Config) { c.ExportIntermediate = w }
}

// WithLogger overrides the status logger (default log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithLogEvery sets the minimum interval between status log lines emitted
// while inside the zero-reward inner solver.
func WithLogEvery(d time.Duration) Option {
	return func(c *Config) { c.LogEvery = d }
}

// DefaultConfig returns sensible defaults: Max mode, upper-bound surfacing,
// absolute convergence at epsilon 1e-6, KMax 10000, no export, the default
// logger, logging at most every two seconds.
func DefaultConfig() Config {
	return Config{
		Mode:                Max,
		LowerBound:          false,
		Epsilon:             1e-6,
		RelativeConvergence: false,
		KMax:                10000,
		Logger:              log.Default(),
		LogEvery:            2 * time.Second,
	}
}
