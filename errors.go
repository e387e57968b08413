package piecetree

import (
	"errors"
	"fmt"

	"github.com/textbuf/piecetree/internal/engine/core"
)

// ErrBoundsError is the sentinel a BoundsError unwraps to, letting
// callers use errors.Is without caring about the offending indices.
var ErrBoundsError = errors.New("piecetree: line out of range")

// ErrInvalidRange is the sentinel an InvalidRangeError unwraps to.
// Nothing in this module currently raises it: ValueInRange follows
// spec.md §7's documented lenient option and normalizes a reversed
// range by swapping its endpoints instead of erroring. It is kept
// exported for
// callers that want to errors.Is-match against it defensively, and so
// a future strict-mode option has a sentinel ready to raise.
var ErrInvalidRange = errors.New("piecetree: invalid range")

// BoundsError reports a line number outside [1, LineCount()].
type BoundsError struct {
	Line      int
	LineCount int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("piecetree: line %d out of range [1, %d]", e.Line, e.LineCount)
}

func (e *BoundsError) Unwrap() error { return ErrBoundsError }

// InvalidRangeError reports a range whose endpoints do not form a
// well-ordered span inside the document.
type InvalidRangeError struct {
	Start, End int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("piecetree: invalid range [%d, %d)", e.Start, e.End)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// convertErr rewraps an internal core.BoundsError as this package's
// own BoundsError, so external callers never need to import the
// internal core package to match on error type.
func convertErr(err error) error {
	if err == nil {
		return nil
	}
	var be *core.BoundsError
	if errors.As(err, &be) {
		return &BoundsError{Line: be.Line, LineCount: be.LineCount}
	}
	return err
}
