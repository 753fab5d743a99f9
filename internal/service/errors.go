package service

import "errors"

// Sentinel errors returned by service methods. The HTTP layer maps each of
// them to exactly one status code; anything not listed here is treated as an
// infrastructure failure.
var (
	// ErrInvalidCredentials is returned by Login when the username does not
	// exist or the password does not verify. Both cases collapse into this
	// single error so that responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated is returned when a session token is missing,
	// forged, expired, or refers to an account that no longer exists.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when an authenticated user attempts to
	// mutate a post or comment they do not own. Distinct from the
	// not-found errors: the resource exists, it just is not theirs.
	ErrForbidden = errors.New("not the owner of this resource")

	// ErrValidationFailed is returned when a request payload violates a
	// field-level constraint. Detected before any store call.
	ErrValidationFailed = errors.New("validation failed")

	// ErrSessionCreationFailed is returned when minting the session token
	// fails for internal reasons (bad key material, signing error).
	ErrSessionCreationFailed = errors.New("session creation failed")
)
