package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileNotFound is returned when a profile lookup by id matches no
	// record, or when a batch lookup returns fewer profiles than ids were
	// requested (the batch is all-or-nothing).
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrScreenNameTaken is returned when an insert or update collides with
	// an existing profile's screen name. The collision is detected via the
	// database uniqueness-violation signal, never by a preliminary lookup.
	ErrScreenNameTaken = errors.New("screen name already taken")

	// ErrUserNotFound is returned when a user lookup by id matches no record.
	ErrUserNotFound = errors.New("user was not found")

	// ErrTokenNotFound is returned when a token lookup by id matches no
	// record.
	ErrTokenNotFound = errors.New("token was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan profile row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan profile rows")
)
