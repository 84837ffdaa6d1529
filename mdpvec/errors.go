package mdpvec

import "errors"

// Sentinel errors for mdpvec package operations.
var (
	// ErrInvalidDimensions indicates that a requested vector length is non-positive.
	ErrInvalidDimensions = errors.New("mdpvec: length must be > 0")

	// ErrIndexOutOfBounds indicates that a state index is outside a vector's length.
	ErrIndexOutOfBounds = errors.New("mdpvec: index out of bounds")

	// ErrDimensionMismatch indicates two vectors have incompatible lengths for the operation.
	ErrDimensionMismatch = errors.New("mdpvec: dimension mismatch")

	// ErrRunLengthNotSorted indicates a RunLength vector was built with unsorted or
	// overlapping run boundaries.
	ErrRunLengthNotSorted = errors.New("mdpvec: run-length boundaries not sorted")
)
