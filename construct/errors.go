package construct

import "errors"

var (
	// ErrStartOutOfRange is returned when the start index is not in [0, n).
	ErrStartOutOfRange = errors.New("construct: start index out of range")

	// ErrInvalidCount is returned when n < 3 or n does not fit in the grid.
	ErrInvalidCount = errors.New("construct: invalid combination of point count and bound")

	// ErrInvalidBound is returned for a bound outside [0, geom.MaxCoord].
	ErrInvalidBound = errors.New("construct: bound outside [0, MaxCoord]")
)
