package stats

import (
	"errors"
	"fmt"
)

// ArgumentError reports input a statistics function cannot work with.
type ArgumentError struct {
	// Op names the function that rejected the input.
	Op string

	// Message is a human-readable description.
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Message)
}

// IsInvalidArgument returns true if err is an *ArgumentError.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

func argError(op, format string, args ...any) *ArgumentError {
	return &ArgumentError{Op: op, Message: fmt.Sprintf(format, args...)}
}
