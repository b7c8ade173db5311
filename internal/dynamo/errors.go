package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory computation.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a system parameter outside its valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrStepTooSmall indicates the adaptive step size fell below the minimum
	// without meeting the error tolerance.
	ErrStepTooSmall = errors.New("dynamo: adaptive step below minimum")

	// ErrDimensionMismatch indicates an initial state whose dimension does not
	// match the system.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrUnknownParameter indicates a SetParam call with a name the system
	// does not define.
	ErrUnknownParameter = errors.New("dynamo: unknown parameter")
)

// SolveError wraps a domain error with the step and time it occurred at.
type SolveError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
