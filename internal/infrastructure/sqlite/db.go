// Package sqlite implements the bookmark repository on SQLite.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"mushaf/internal/bookmarks/domain"
	"mushaf/internal/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open opens (creating if needed) the bookmarks database at path, applies
// pending migrations, and returns the database plus a ready repository.
func Open(path string) (*sql.DB, domain.Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening bookmarks database: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	log.Debug(log.CatDB, "bookmarks database ready", "path", path)
	return db, NewBookmarkRepository(db), nil
}

// Migrate applies all pending schema migrations to db.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("preparing migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
