package tour

import "errors"

var (
	// ErrTooFewPoints is returned when a tour would have fewer than MinSize points.
	ErrTooFewPoints = errors.New("tour: a closed tour needs at least 3 points")

	// ErrDuplicatePoint is returned by NewDistinct when two points compare equal.
	ErrDuplicatePoint = errors.New("tour: duplicate point")

	// ErrRangeOutOfBounds is returned by Reverse for an invalid [i..j] range.
	ErrRangeOutOfBounds = errors.New("tour: reversal range out of bounds")
)
