package tourio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/uncross/geom"
)

var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("tourio: malformed point line")

	// ErrOutOfBounds matches every *BoundsError.
	ErrOutOfBounds = errors.New("tourio: point outside bound")
)

// ParseError reports a malformed line of the text format.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
	Err  error  // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tourio: line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("tourio: line %d %q: expected \"x y\"", e.Line, e.Text)
}

// Is makes errors.Is(err, ErrParse) hold.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// BoundsError reports the first point with a coordinate outside [-Bound, Bound].
type BoundsError struct {
	Index int
	Point geom.Point
	Bound int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("tourio: point %d %v outside [-%d, %d]", e.Index, e.Point, e.Bound, e.Bound)
}

// Is makes errors.Is(err, ErrOutOfBounds) hold.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }
