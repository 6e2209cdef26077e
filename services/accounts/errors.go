package accounts

import "errors"

var (
	// ErrAccountNotFound is returned when no account matches the lookup
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken is returned when registering with an email already in use
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for a wrong email/password pair
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole is returned for a role outside dealer/driver
	ErrInvalidRole = errors.New("invalid account role")
)
