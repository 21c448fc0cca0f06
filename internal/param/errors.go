package param

import (
	"errors"
	"fmt"
)

// LoadError reports an I/O failure while loading a parameter file.
//
// Malformed lines never produce a LoadError; only open and read failures do.
// Lines read before the failure stay merged in the store.
type LoadError struct {
	// Path is the file being loaded ("" when loading from a reader).
	Path string

	// Line is the number of lines consumed before the failure.
	Line int

	// Err is the underlying I/O error.
	Err error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load parameters: line %d: %v", e.Line, e.Err)
	}
	if e.Line == 0 {
		return fmt.Sprintf("load parameters from %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load parameters from %s: line %d: %v", e.Path, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsIOFailure returns true if err came from reading a parameter source.
// Uses errors.As to handle wrapped errors.
func IsIOFailure(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
