package postgres

import (
	"context"
	"log/slog"

	"addressbook/internal/errors"
	"addressbook/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Migrator applies the embedded goose migrations on the connection pool owned by GORM.
// It never closes the pool; that stays with the fx lifecycle of New.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator creates a goose provider over the embedded migration files.
func NewMigrator(db *gorm.DB, logger *slog.Logger) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create goose provider")
	}

	return &Migrator{provider: provider, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	for _, result := range results {
		m.logResult(ctx, result)
	}
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if result != nil {
		m.logResult(ctx, result)
	}
	if err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	return nil
}

// Status reports every known migration with its applied state.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migration status")
	}

	return statuses, nil
}

func (m *Migrator) logResult(ctx context.Context, result *goose.MigrationResult) {
	if m.logger == nil || result == nil || result.Source == nil {
		return
	}

	attrs := []slog.Attr{
		slog.Int64("version", result.Source.Version),
		slog.String("path", result.Source.Path),
		slog.String("direction", result.Direction),
		slog.Duration("duration", result.Duration),
	}

	if result.Error != nil {
		attrs = append(attrs, slog.String("error", result.Error.Error()))
		m.logger.LogAttrs(ctx, slog.LevelError, "Migration failed", attrs...)

		return
	}

	m.logger.LogAttrs(ctx, slog.LevelInfo, "Migration applied", attrs...)
}
