package meanshift

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when Cluster is given no points.
	ErrEmptyInput = errors.New("meanshift: empty input point set")

	// ErrInvalidDimension is returned when the input points have no coordinates.
	ErrInvalidDimension = errors.New("meanshift: points must have at least one coordinate")
)

// ErrDimensionMismatch indicates that two points with different coordinate
// vector lengths were combined.
//
// Point arithmetic panics with this error; Cluster and RefineParallel return it.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	// Label of the offending point, if known.
	Label string
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("meanshift: dimension mismatch for point %q: expected %d, got %d", e.Label, e.Expected, e.Actual)
	}
	return fmt.Sprintf("meanshift: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
