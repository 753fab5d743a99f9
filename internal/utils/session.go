package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nax3t/go-blog/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying the given
// user identifier, suitable for use as the value of the session cookie.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID in canonical UUID string form
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionTTL
//
// All parameters are required. Returns an error if any of them are empty
// or zero.
//
// Parameters:
//
//	issuer     - identifier of the token issuer (e.g. service name)
//	userID     - ID of the user the session belongs to
//	sessionTTL - how long the session remains valid
//	signKey    - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Session - contains the signed token string and the jwt.Token object
//	error          - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	session, err := utils.GenerateSessionToken("go-blog", user.ID, 24*time.Hour, "secret")
func GenerateSessionToken(issuer string, userID uuid.UUID, sessionTTL time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || userID == uuid.Nil || sessionTTL == 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// extracts the user identifier it carries.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to a UUID
//
// Parameters:
//
//	tokenString - the raw signed JWT string taken from the session cookie
//	signKey     - secret key used to verify the token signature
//	issuer      - expected issuer value to validate against the iss claim
//
// Returns:
//
//	models.Session - contains the parsed jwt.Token object and the extracted user ID
//	error          - non-nil if validation fails, claims are missing, or the
//	                 subject is not a well-formed UUID
//
// Example usage:
//
//	session, err := utils.ValidateAndParseSessionToken(cookie.Value, "secret", "go-blog")
//	if err != nil {
//	    // treat the request as carrying an invalid session
//	}
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	session, err := jwt.ParseWithClaims(tokenString, &models.Session{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	sub, err := session.Claims.GetSubject()
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during getting subject from session token: %w", err)
	}
	if sub == "" {
		return models.Session{}, errors.New("empty subject in session token")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during parsing subject as user ID: %w", err)
	}

	return models.Session{Token: session, UserID: userID}, nil
}
