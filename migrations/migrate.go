package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations for the given engine
// ("postgres" or "sqlite"). Each engine carries its own migration directory
// because the auto-increment and timestamp syntax differ between them.
func Migrate(db *sql.DB, engine string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch engine {
	case "postgres":
		dialect, dir = "pgx", "postgres"
	case "sqlite":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unknown engine %q", engine)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
