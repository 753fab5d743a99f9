package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// bcrypt is deliberately slow and cost-parameterized so that brute-force
// guessing stays expensive; the per-password salt is embedded in the opaque
// output, so no separate salt storage is needed.
//
// Parameters:
//
//	password - the plaintext password to hash
//	cost     - the bcrypt cost factor; values below bcrypt.MinCost fall
//	           back to bcrypt.DefaultCost
//
// Returns:
//
//	string - the opaque hash in bcrypt's standard encoded form
//	error  - non-nil if the hashing operation itself fails
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret-pass", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword checks the given plaintext password against a stored
// bcrypt hash.
//
// A mismatch is a normal outcome, not an error: the function returns
// (false, nil). Only an unrecoverable condition (a malformed or truncated
// stored hash, an unsupported cost) produces a non-nil error, so callers
// can tell "wrong password" apart from "broken credential record".
//
// Parameters:
//
//	password - the plaintext password to verify
//	hash     - the stored bcrypt hash to verify against
//
// Returns:
//
//	bool  - true if the password matches the hash
//	error - non-nil only for malformed hashes or internal bcrypt failures
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password hash: %w", err)
	}
}
