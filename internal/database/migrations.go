package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/Renal37/canteen-admin/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations доводит схему журнала до последней встроенной версии.
func (d *Database) RunMigrations() error {
	if d.dsn == "" {
		return errors.New("миграции требуют DATABASE_URI")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("не удалось открыть встроенные миграции: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, d.dsn)
	if err != nil {
		return fmt.Errorf("не удалось подготовить миграции: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("ошибка при выполнении миграций: %w", err)
	}

	version, dirty, versionErr := m.Version()
	if versionErr != nil {
		return fmt.Errorf("не удалось прочитать версию схемы: %w", versionErr)
	}

	logger.Log.Info("journal schema is up to date",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
		zap.Bool("changed", err == nil),
	)

	return nil
}
