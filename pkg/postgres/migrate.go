package postgres

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies every pending up migration found at the root of source. It returns the
// schema version after the run.
func (p *Postgres) Migrate(source fs.FS, databaseName string) (uint, error) {
	driver, err := pgmigrate.WithInstance(p.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		return 0, fmt.Errorf("migration driver: %w", err)
	}

	sourceDriver, err := iofs.New(source, ".")
	if err != nil {
		return 0, fmt.Errorf("migration source: %w", err)
	}

	migrations, err := migrate.NewWithInstance("iofs", sourceDriver, databaseName, driver)
	if err != nil {
		return 0, err
	}

	if err = migrations.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, err
	}

	version, _, err := migrations.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}

	return version, nil
}
