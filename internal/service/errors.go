package service

import "errors"

var (
	// ErrInvalidRequest marks client-side filter validation failures.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrNotConfigured means no Places credential is available, so no
	// upstream call can be made.
	ErrNotConfigured = errors.New("google maps api is not configured")

	// ErrMalformedRecord marks a single upstream place record that cannot be
	// normalized because its identifier is missing. Such records are dropped
	// from the result sequence; the error never reaches the caller.
	ErrMalformedRecord = errors.New("malformed upstream record")
)
