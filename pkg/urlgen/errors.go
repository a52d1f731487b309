package urlgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for expansion.
var (
	// ErrInternalInvariant indicates a scanned span violated an internal
	// invariant. It signals a defect in the scanner, not bad input.
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrRangeBounds indicates a range bound does not fit in 64 bits.
	ErrRangeBounds = errors.New("range bound out of bounds")

	// ErrTooManyResults indicates the result set would exceed the configured limit.
	ErrTooManyResults = errors.New("too many results")
)

// InvariantError reports a span that the combinator cannot trust.
type InvariantError struct {
	// Start and End locate the offending span in the template.
	Start int
	End   int
	// Reason describes the violated invariant.
	Reason string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("placeholder at [%d,%d): %s: %s", e.Start, e.End, ErrInternalInvariant, e.Reason)
}

// Unwrap returns ErrInternalInvariant for errors.Is support.
func (e *InvariantError) Unwrap() error {
	return ErrInternalInvariant
}

// RangeError wraps a failure to parse a range bound.
type RangeError struct {
	// Raw is the placeholder text, e.g. "[1-99999999999999999999]".
	Raw string
	// Bound is the digit string that failed to parse.
	Bound string
	// Err is the underlying strconv error.
	Err error
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("range %s: bound %q: %v", e.Raw, e.Bound, e.Err)
}

// Is reports ErrRangeBounds so callers need not inspect the strconv error.
func (e *RangeError) Is(target error) bool {
	return target == ErrRangeBounds
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RangeError) Unwrap() error {
	return e.Err
}

// LimitError is returned when WithMaxResults is set and a template would
// produce more results than allowed.
type LimitError struct {
	Count int
	Max   int
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %d exceeds limit %d", ErrTooManyResults, e.Count, e.Max)
}

// Unwrap returns ErrTooManyResults.
func (e *LimitError) Unwrap() error {
	return ErrTooManyResults
}
