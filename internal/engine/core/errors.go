package core

import "fmt"

// BoundsError is raised by LineContent, LineContentRaw and LineLength
// when the requested 1-based line number is outside [1, LineCount]
// (spec.md §7).
type BoundsError struct {
	Line      int
	LineCount int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("piecetree: line %d out of range [1, %d]", e.Line, e.LineCount)
}

// InvalidRangeError describes a malformed (reversed) range. Nothing
// in this package returns it: ValueInRange swaps reversed endpoints
// instead of erroring (spec.md §7's lenient behavior).
type InvalidRangeError struct {
	Start, End int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("piecetree: invalid range [%d, %d)", e.Start, e.End)
}
