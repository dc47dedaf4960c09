package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "connection exception", err: &pgconn.PgError{Code: pgerrcode.ConnectionException}, want: ConnectionFailure},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: ConnectionFailure},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: ConnectionFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: ConstraintViolation},
		{name: "not null violation", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation}, want: ConstraintViolation},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: ConstraintViolation},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: Unclassified},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Unclassified},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: ConnectionFailure},
		{name: "cannot open", err: sqlite3.Error{Code: sqlite3.ErrCantOpen}, want: ConnectionFailure},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: ConstraintViolation},
		{name: "generic", err: sqlite3.Error{Code: sqlite3.ErrError}, want: Unclassified},
	}

	c := NewSQLiteErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
