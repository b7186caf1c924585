// Package postgres implements the facade's remote adapter over PostgreSQL.
// The queries deliberately stay within the minimal document-store capability
// set the core depends on: select all records where the owner field equals X
// ordered by a timestamp field descending, insert one row, delete by id.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/editiq/editiq/internal/dbx"
	"github.com/editiq/editiq/internal/store"
	"github.com/editiq/editiq/internal/store/postgres/migrations"
)

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations points goose at the embedded migrations and applies them.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}

// Open connects with the pgx stdlib driver and migrates the schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// NewBackend wires a full remote backend over the given DBTX. Passing a
// transaction handle lets bulk operations (backup restore) reuse the same
// collections atomically.
func NewBackend(db dbx.DBTX) store.Backend {
	return store.Backend{
		Clients:      Clients{db: db},
		Transactions: Transactions{db: db},
		Credentials:  Credentials{db: db},
		Tasks:        Tasks{db: db},
	}
}

// nullable maps the empty string to NULL for weak references.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
