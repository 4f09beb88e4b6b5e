package auth

import "errors"

var (
	// ErrNoSession is returned when an operation requires an authenticated
	// profile and the request carries none.
	ErrNoSession = errors.New("no active session")

	ErrInvalidToken = errors.New("invalid or expired session token")

	// ErrProfileMismatch is a dead end on login: the stored profile for the
	// HR ID does not match the submitted details field-for-field. There is no
	// retry-as-setup path; setting up a workspace is a separate operation.
	ErrProfileMismatch = errors.New("profile details do not match this HR ID")
)
