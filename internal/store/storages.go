package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/migrations"
)

// Storages aggregates the repositories and owns the connection they share.
type Storages struct {
	PostRepository PostRepository

	db *DB
}

// NewStorages connects to the database named by cfg.DB.DSN, applies the
// embedded migrations when cfg.DB.AutoMigrate is set and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dialect, dsn, err := ParseDSN(cfg.DB.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("unable to select database driver")
		return nil, err
	}

	dbCfg := cfg.DB
	dbCfg.DSN = dsn

	var db *DB
	switch dialect {
	case migrations.DialectPostgres:
		db, err = NewConnectPostgres(ctx, dbCfg, log)
	default:
		db, err = NewConnectSQLite(ctx, dbCfg, log)
	}
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Str("dialect", dialect).Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("func", "NewStorages").Str("dialect", dialect).Msg("migrations applied")
	}

	return &Storages{
		PostRepository: NewPostRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ParseDSN infers the migrations dialect from dsn and returns the DSN in the
// form the matching driver expects.
//
//	postgres://..., postgresql://...  → postgres, unchanged
//	sqlite://path                     → sqlite3, "path"
//	file:..., :memory:, *.db          → sqlite3, unchanged
func ParseDSN(dsn string) (dialect string, driverDSN string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return migrations.DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:", strings.HasSuffix(dsn, ".db"):
		return migrations.DialectSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

// redactDSN keeps only the scheme so credentials never reach the logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i] + "://..."
	}
	return "..."
}
