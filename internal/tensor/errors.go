package tensor

import (
	"errors"
	"fmt"
)

// Common validation errors for creation and random operations.
var (
	ErrInvalidShape     = errors.New("shape must be a Shape, []int, a slice of ints and 1-element integer tensors, or a 1-D integer tensor")
	ErrUnknownDType     = errors.New("unknown data type name")
	ErrUnsupportedDType = errors.New("data type not supported by this operation")
	ErrEmptyRange       = errors.New("low must be less than high")
	ErrNonPositiveN     = errors.New("n must be greater than 0")
)

// ArgError reports an invalid argument to a tensor operation.
type ArgError struct {
	Op    string // Operation name (e.g., "randint")
	Arg   string // Argument name (e.g., "dtype", "shape")
	Value any    // Offending value
	Err   error  // Underlying sentinel error
}

// Error implements the error interface.
func (e *ArgError) Error() string {
	return fmt.Sprintf("%s: argument %q = %v: %v", e.Op, e.Arg, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ArgError) Unwrap() error {
	return e.Err
}
