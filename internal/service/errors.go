package service

import "errors"

// Sentinel errors returned by the service layer. The HTTP layer maps them
// to status codes in its errors_mapper; callers match with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a required field is missing
	// or malformed (empty username, negative amount, zero user id, ...).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any authentication failure.
	// Unknown username and wrong password deliberately collapse into this
	// one value so the API cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordTooShort is returned when a new password (registration or
	// change) is shorter than the 6-character minimum.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrSamePassword is returned when a password change supplies a new
	// password equal to the current one.
	ErrSamePassword = errors.New("new password must be different from current password")

	// ErrVersionIsNotSpecified is returned at startup when the build carries
	// no version string for the app info service.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
