package desking

import "errors"

var (
	// ErrInvalidInput marks a request rejected before any arithmetic ran.
	ErrInvalidInput = errors.New("invalid desking input")
	// ErrComputation marks an amortization that has no finite answer.
	ErrComputation = errors.New("desking computation failed")
)
