// Package search - option validation shared by both engines.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - Only sentinel errors from errors.go.
package search

// validateOptions checks HillClimb options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if !opts.Strategy.Valid() {
		return ErrUnknownStrategy
	}
	if opts.MaxRounds < 0 || opts.TimeLimit < 0 {
		return ErrInvalidOptions
	}
	return nil
}

// validateAnnealOptions checks the schedule. The loop only terminates on its
// own when InitialTemp decays below a positive MinTemp, so Cooling must be in
// (0,1) and MinTemp must be positive.
//
// Complexity: O(1).
func validateAnnealOptions(opts AnnealOptions) error {
	if opts.InitialTemp <= 0 || opts.MinTemp <= 0 {
		return ErrInvalidOptions
	}
	if opts.Cooling <= 0 || opts.Cooling >= 1 {
		return ErrInvalidOptions
	}
	if opts.StepsPerRound < 0 || opts.MaxSteps < 0 || opts.TimeLimit < 0 {
		return ErrInvalidOptions
	}
	switch opts.Acceptance {
	case AcceptMetropolis, AcceptAlways:
	default:
		return ErrUnknownAcceptance
	}
	return nil
}

// Validate reports whether opts would be accepted by HillClimb.
func (o Options) Validate() error { return validateOptions(o) }

// Validate reports whether opts would be accepted by Anneal.
func (o AnnealOptions) Validate() error { return validateAnnealOptions(o) }
