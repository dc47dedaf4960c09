// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the posts table and applies it
// with goose. Each supported dialect keeps its own directory of migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported dialects. The values double as goose dialect names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}
