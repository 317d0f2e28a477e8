package errors

import (
	e "errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(err error) error {
	return notFound{fmt.Sprintf("Not found: %v", err)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var nf notFound
	return e.As(err, &nf)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error was caused by invalid input.
func IsValidationError(err error) bool {
	var ve validationError
	return e.As(err, &ve)
}

type duplicateID struct {
	id string
}

func (d duplicateID) Error() string {
	return fmt.Sprintf("duplicate id %q", d.id)
}

// NewDuplicateID creates an error for an identifier that is already taken.
func NewDuplicateID(id string) error {
	return duplicateID{id}
}

// IsDuplicateID checks if the given error reports an identifier collision.
func IsDuplicateID(err error) bool {
	var d duplicateID
	return e.As(err, &d)
}
