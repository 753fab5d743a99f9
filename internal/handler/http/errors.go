package http

import "errors"

// Sentinel errors raised by the HTTP layer itself, before any service call.
// Callers can match against them with [errors.Is].
var (
	// ErrMissingSessionCookie is returned by the auth middleware when the
	// incoming request carries no session cookie at all.
	ErrMissingSessionCookie = errors.New("missing session cookie")

	// ErrInvalidJSONBody is returned when a request body cannot be decoded
	// as JSON into the expected payload type.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")
)
