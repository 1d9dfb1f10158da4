package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells a repository how a failed statement should be reported upwards.
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated mapping. It is
	// reported as an unexpected database error.
	Unclassified ErrorClassification = iota

	// UniqueViolation means the row collides with an existing unique key.
	UniqueViolation

	// ConstraintViolation means the row breaks a CHECK or NOT NULL rule.
	ConstraintViolation

	// ConnectionFailure means the statement never reached a healthy server.
	ConnectionFailure
)

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ConnectionFailure
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	// Class 23: integrity constraint violations
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.IntegrityConstraintViolation:
		return ConstraintViolation

	// Class 08 connection exceptions, Class 57 operator intervention
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown:
		return ConnectionFailure
	}

	return Unclassified
}
