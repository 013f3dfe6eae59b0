package service

import "errors"

var (
	// ErrAuthenticationRequired is returned when an endpoint demands a
	// credential that the caller did not supply.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrMasterTokenRequired is returned when a valid token lacks the
	// master privilege an endpoint demands.
	ErrMasterTokenRequired = errors.New("master token required")

	// ErrNotProfileOwner is returned when a caller tries to mutate a
	// profile owned by somebody else.
	ErrNotProfileOwner = errors.New("profile is owned by another user")

	// ErrSessionCreationFailed wraps any failure while signing a new
	// session token.
	ErrSessionCreationFailed = errors.New("session token creation failed")

	// ErrSessionIsExpiredOrInvalid normalises every session parsing or
	// validation failure so callers need not inspect low-level JWT errors.
	ErrSessionIsExpiredOrInvalid = errors.New("session token is expired or invalid")

	// ErrVersionIsNotSpecified is returned at startup when the application
	// version is missing from configuration.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
