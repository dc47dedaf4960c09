package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It selects the storage sentinel a driver error is wrapped with.
type ErrorClassification int

const (
	// Unclassified is the default for unrecognised errors. It maps to
	// [ErrExecutingQuery].
	Unclassified ErrorClassification = iota

	// ConnectionFailure maps to [ErrAcquiringConnection].
	ConnectionFailure

	// ConstraintViolation maps to [ErrConstraintViolation].
	ConstraintViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError values are [Unclassified], except pgconn connect errors.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ConnectionFailure
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// ConnectionFailure codes:
//   - Class 08: connection exceptions
//   - 57P03: cannot connect now
//
// ConstraintViolation codes:
//   - Class 23: integrity constraint violations
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return ConnectionFailure

	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return ConstraintViolation
	}

	return Unclassified
}
