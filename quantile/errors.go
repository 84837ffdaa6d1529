package quantile

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator indicates the threshold operator string was not one of
// "<", "<=", ">", ">=".
var ErrUnknownOperator = errors.New("Unknown threshold operator")

// ErrNoThresholds indicates Solve was called with an empty thresholds slice.
var ErrNoThresholds = errors.New("quantile: no thresholds provided")

// ErrBadPartition indicates the One and Zero bitsets are not disjoint.
var ErrBadPartition = errors.New("quantile: one-set and zero-set are not disjoint")

// NonConvergenceError reports that the zero-reward inner solver reached
// KMax sweeps without meeting the configured convergence tolerance.
// Error() recommends increasing KMax or switching method.
type NonConvergenceError struct {
	Level      int
	Sweeps     int
	Residual   float64
	Epsilon    float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf(
		"quantile: zero-reward inner solver did not converge at outer level %d after %d sweeps "+
			"(residual %g, epsilon %g); increase KMax or switch method",
		e.Level, e.Sweeps, e.Residual, e.Epsilon,
	)
}
