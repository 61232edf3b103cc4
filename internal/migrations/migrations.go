package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var Files embed.FS

// Source returns the embedded migrations as a golang-migrate source driver.
func Source() (source.Driver, error) {
	driver, err := iofs.New(Files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}
	return driver, nil
}

// migrator is the part of *migrate.Migrate that Run drives.
type migrator interface {
	Version() (version uint, dirty bool, err error)
	Force(version int) error
	Up() error
}

// Run applies pending migrations when autoMigrate is set.
// With autoMigrate off it only reports the current version; the catalog table can still be
// created later by the shop bootstrapper when shop.auto_bootstrap is enabled.
func Run(db *sql.DB, autoMigrate bool) error {
	sourceDriver, err := Source()
	if err != nil {
		return err
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return apply(m, autoMigrate)
}

func apply(m migrator, autoMigrate bool) error {
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if !autoMigrate {
		if dirty {
			// Nothing will re-run the interrupted file, so only clear the flag.
			slog.Warn("Database is in dirty state - migration was interrupted",
				"version", version,
				"action", "marking current version clean; auto-migration is disabled",
			)
			if err := m.Force(int(version)); err != nil {
				return fmt.Errorf("failed to recover dirty migration state at version %d: %w", version, err)
			}
		}
		slog.Info("Auto-migration disabled, skipping migrations",
			"current_version", version,
			"dirty", dirty,
		)
		return nil
	}

	if dirty {
		// Every migration is written with IF [NOT] EXISTS, so stepping back one version
		// and re-running the interrupted file is safe.
		previous := int(version) - 1
		if previous < 1 {
			previous = database.NilVersion
		}
		slog.Warn("Database is in dirty state - migration was interrupted",
			"version", version,
			"action", "forcing previous version and re-applying",
			"force_version", previous,
		)
		if err := m.Force(previous); err != nil {
			return fmt.Errorf("failed to recover dirty migration state at version %d: %w", version, err)
		}
	}

	slog.Info("Running database migrations", "current_version", version)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("Database schema is up to date", "version", version)
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get updated migration version: %w", err)
	}

	slog.Info("Database migrations completed successfully",
		"from_version", version,
		"to_version", newVersion,
	)

	return nil
}
