// Package apperr defines the error taxonomy shared by handlers and
// middleware: domain errors carrying an HTTP status, and validation
// errors carrying an ordered list of field messages.
package apperr

import "net/http"

// Error is a domain error with an explicit HTTP status. It is used for
// business-rule violations (401/403/404) raised inside handlers.
type Error struct {
	Status  int
	Message string
}

// New constructs a domain error with the given status and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Validation carries the ordered, human-readable messages of one or more
// failed input constraints. It is surfaced as 400 {"errors": [...]}.
type Validation struct {
	Messages []string
}

func (e *Validation) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return e.Messages[0]
}

// NewValidation constructs a validation error from its messages.
func NewValidation(messages ...string) *Validation {
	return &Validation{Messages: messages}
}

// Convenience constructors for the recurring domain errors.

// Unauthorized is the generic 401. The message never distinguishes an
// unknown account from a wrong password.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, "Authorization failed")
}

// Forbidden is the 403 raised when the caller does not own the resource.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound is the 404 raised when a referenced course does not exist.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}
