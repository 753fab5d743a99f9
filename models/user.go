package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, minted as a UUIDv4 at
	// registration time and never reused.
	ID uuid.UUID `json:"id"`

	// Username is the unique public name of the user. Uniqueness is
	// enforced by the users table.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized to JSON and never leaves the store layer
	// in a verifiable or plain form.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account modification
	// (username or password change).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
