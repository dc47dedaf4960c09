package store

import "errors"

// Absent-result conditions. They are not failures: the handler layer maps
// them to 404 responses. Callers should use [errors.Is] to match them.
var (
	// ErrPostNotFound is returned when no row in the posts table has the
	// requested id.
	ErrPostNotFound = errors.New("post was not found")

	// ErrNoPublishedPosts is returned by ListPublished when the query yields
	// no rows.
	ErrNoPublishedPosts = errors.New("no published posts")
)

// Storage failures. They are wrapped together with the driver error as
// fmt.Errorf("%w: %w", sentinel, cause) and are never retried.
var (
	// ErrAcquiringConnection is returned when a pooled connection cannot be
	// obtained or is lost (PostgreSQL class 08, 57P03, closed pool, bad conn).
	ErrAcquiringConnection = errors.New("failed to acquire database connection")

	// ErrConstraintViolation is returned when the database rejects a write
	// because of an integrity constraint (PostgreSQL class 23).
	ErrConstraintViolation = errors.New("integrity constraint violation")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails for any reason not covered above.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan post row")

	// ErrScanningRows is returned when scanning or iterating a multi-row
	// result fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan post rows")

	// ErrUnsupportedDSN is returned when the storage driver cannot be
	// inferred from the DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
