// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clinic/internal/config"
	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/migrations"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps a *sql.DB together with the dialect-specific pieces the
// repositories need: the placeholder format and the driver error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a connection pool for the DSN in cfg. The driver is picked by
// the DSN scheme:
//   - postgres:// and postgresql:// → PostgreSQL through pgx
//   - sqlite:// and file:           → SQLite through go-sqlite3
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
}

// Dialect reports which backend the pool talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies every pending migration for the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder using the placeholder
// format of the dialect ($1 for PostgreSQL, ? for SQLite).
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// redactDSN strips everything after the scheme so credentials never reach
// logs or error messages.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if i := strings.Index(dsn, ":"); i >= 0 {
		return dsn[:i+1] + "..."
	}
	return "..."
}
