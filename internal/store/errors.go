package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same usuario already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by usuario produces an
	// empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPatientNotFound is returned when a read, update or delete targets a
	// patient id that is not present in the pacientes table.
	ErrPatientNotFound = errors.New("patient was not found")

	// ErrConstraintViolation is returned when the database rejects a row
	// because it breaks a CHECK or NOT NULL constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedDSN is returned when DATABASE_URL names a driver that
	// is neither PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingProfile is returned when a patient profile cannot be
	// converted to or from its stored JSON document.
	ErrEncodingProfile = errors.New("failed to encode patient profile")
)
