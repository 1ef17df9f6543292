package booking

import "errors"

// ConfirmValidationMessage is surfaced when Confirm & Pay is pressed
// before both a date and a slot are chosen.
const ConfirmValidationMessage = "Please select date and time slot"

// ValidationError is a user-recoverable failure: reported inline with no
// state mutation. There is no fatal error path in the sequencer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// ErrSessionNotFound is returned when a booking session id is unknown or
// has expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")
