package user

import "errors"

var (
	// ErrUserExists is returned when the username or email is taken.
	ErrUserExists = errors.New("username or email already exists")
	// ErrUserNotFound is returned for unknown user ids or usernames.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrWeakPassword is returned when the password fails the policy.
	ErrWeakPassword = errors.New("password does not meet requirements")
	// ErrSignupNotFound is returned when a signup session is unknown or expired.
	ErrSignupNotFound = errors.New("signup session not found or expired")
)
