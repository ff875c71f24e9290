package database

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

// MigrateDatabase applies every pending goose migration found in dir of the
// migrations filesystem.
func MigrateDatabase(databaseUrl string, migrations fs.FS, dir string) error {
	db, err := sql.Open(migrationsDriver, databaseUrl)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(migrationsDialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
