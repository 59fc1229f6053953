// Package apperrors defines the typed error outcomes the controller
// surfaces to the presentation layer.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an entry id
// that does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ErrEmptyResult is returned when an aggregate is requested over zero
// matching rows (e.g. average rating with no entries).
var ErrEmptyResult = errors.New("no entries match the given filter")

// ValidationError reports invalid input caught before it reaches
// storage.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IOError reports that a storage or export destination could not be
// written or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error on %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIO wraps err as an IOError for the given path.
func NewIO(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}

// IsIO reports whether err is an IOError.
func IsIO(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
