package mdpbuilder

import "errors"

// ErrTooFewStates indicates a topology generator was asked for fewer states
// than its minimum.
var ErrTooFewStates = errors.New("mdpbuilder: too few states")

// ErrInvalidDensity indicates RandomSparse received a density outside (0,1].
var ErrInvalidDensity = errors.New("mdpbuilder: density must be in (0,1]")
