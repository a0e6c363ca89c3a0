package chain

import (
	"errors"
	"fmt"
)

// StoreErrorCode categorizes chain storage errors.
type StoreErrorCode string

const (
	// CodeCorrupt indicates an existing chain file that cannot be used:
	// unparsable JSON, or a parsed chain violating the run-number invariant.
	CodeCorrupt StoreErrorCode = "CORRUPT_CHAIN"

	// CodeAccess indicates the file could not be read or written
	// (permissions, missing parent directory, rename failure).
	CodeAccess StoreErrorCode = "FILE_ACCESS"
)

// StoreError is a chain storage failure with a category code and the
// path involved. Callers dispatch on the code via IsCorrupt/IsAccess
// rather than matching message text.
type StoreError struct {
	Code    StoreErrorCode
	Path    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Code, e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Path)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsCorrupt reports whether err is a CodeCorrupt store error.
// Uses errors.As to handle wrapped errors.
func IsCorrupt(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == CodeCorrupt
}

// IsAccess reports whether err is a CodeAccess store error.
func IsAccess(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == CodeAccess
}

func newCorrupt(path, message string, err error) *StoreError {
	return &StoreError{Code: CodeCorrupt, Path: path, Message: message, Err: err}
}

func newAccess(path, message string, err error) *StoreError {
	return &StoreError{Code: CodeAccess, Path: path, Message: message, Err: err}
}
