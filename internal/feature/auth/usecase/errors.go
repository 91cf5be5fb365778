// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email, ID,
	// or refresh token.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register a user
	// with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrMissingFields is returned when a required registration field
	// is empty.
	ErrMissingFields = errors.New("all fields are required")

	// ErrPasswordMismatch is returned when password and confirmPassword
	// differ at registration.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password. The two cases are deliberately indistinguishable so the
	// login endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRefreshToken is returned when a refresh token fails
	// verification or no longer matches the stored slot.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
