package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/migrations"
)

// DB wraps a pooled *sql.DB together with everything that differs between
// the supported SQL dialects.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            statementBuilder(dialect),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Dialect returns the migrations dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// wrapError attaches the storage sentinel matching err.
func (db *DB) wrapError(err error) error {
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}

	var classification ErrorClassification
	if db.errorClassificator != nil {
		classification = db.errorClassificator.Classify(err)
	}

	switch classification {
	case ConnectionFailure:
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	case ConstraintViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// wrapScanError wraps err with sentinel unless the driver reported it
// while the statement was still running, in which case it is classified
// like any other driver error.
func (db *DB) wrapScanError(err error, sentinel error) error {
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return db.wrapError(err)
	}
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) != Unclassified {
		return db.wrapError(err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
