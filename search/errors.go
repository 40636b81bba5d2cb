package search

import "errors"

var (
	// ErrUnknownStrategy is returned for a Strategy outside the known set or an
	// unparseable strategy name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrUnknownAcceptance is returned for an unparseable acceptance policy name.
	ErrUnknownAcceptance = errors.New("search: unknown acceptance policy")

	// ErrInvalidOptions is returned when numeric options are out of range
	// (negative caps, non-positive temperatures, cooling outside (0,1), ...).
	ErrInvalidOptions = errors.New("search: invalid options")

	// ErrTimeLimit is returned together with the partial result when the soft
	// wall-clock budget is exhausted.
	ErrTimeLimit = errors.New("search: time limit exceeded")
)
