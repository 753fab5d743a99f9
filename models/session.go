package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName is the name of the http-only cookie carrying the
// session token. The cookie value is a signed JWT whose subject is the
// authenticated user's ID, so the client can neither forge nor alter it.
const SessionCookieName = "user_id"

// Session wraps the JWT that backs a login session.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be set as the session cookie value.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim. It is
// populated during token construction or validation and avoids repeated
// string-to-UUID parsing.
type Session struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string
	// form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`
}

// GetUserID extracts the user identifier from the session's "sub" (subject)
// claim, parses it as a canonical UUID string, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or is not a
// well-formed UUID.
func (s *Session) GetUserID() (uuid.UUID, error) {
	sub, err := s.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting user ID from session token: %w", err)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error parsing user ID from session token: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the session token.
// It implements the [fmt.Stringer] interface.
func (s *Session) String() string {
	return s.SignedString
}
