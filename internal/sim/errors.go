package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrUnstable indicates a body's position or velocity became NaN or Inf.
	ErrUnstable = errors.New("sim: simulation unstable (non-finite body state)")

	// ErrInvalidStep indicates a run configuration that cannot be stepped.
	ErrInvalidStep = errors.New("sim: invalid step configuration")
)

// StepError wraps an error with the tick and body index it was found at.
type StepError struct {
	Step    int
	Body    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (body %d): %v", e.Step, e.Body, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
