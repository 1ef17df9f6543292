package search

import "errors"

// ValidationError is a user-recoverable input failure: surfaced inline,
// never fatal, and never accompanied by a state change.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// ErrSessionNotFound is returned when a search session id is unknown or
// has expired.
var ErrSessionNotFound = errors.New("search session not found or expired")
