package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an INSERT or username change hits
	// the unique constraint on users.username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a keyed lookup or update targets a
	// user record that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPostNotFound is returned when a keyed lookup or update targets a
	// post record that does not exist.
	ErrPostNotFound = errors.New("post was not found")

	// ErrCommentNotFound is returned when a keyed lookup or update targets
	// a comment record that does not exist.
	ErrCommentNotFound = errors.New("comment was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. They all map to the infrastructure failure kind at the
// HTTP boundary.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
