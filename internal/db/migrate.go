package db

import (
	"errors"
	"fmt"

	"masjidhub-backend/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const defaultMigrationsURL = "file://db/migrations"

// MigrateUp applies all pending migrations. A database already at the latest
// version is not an error.
func MigrateUp(cfg *config.Config, migrationsURL string) error {
	if migrationsURL == "" {
		migrationsURL = defaultMigrationsURL
	}

	migrator, err := migrate.New(migrationsURL, cfg.GetDatabaseConnectionString())
	if err != nil {
		return fmt.Errorf("init migrator failed: %w", err)
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migrate up failed: %w", err)
	}
	return nil
}
