package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/crm-backend/migrations"
)

// Migrator applies the embedded goose migrations. goose needs a
// database/sql handle, so it opens its own connection next to the pool.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

// NewMigrator opens a database/sql connection to dsn and prepares the
// goose provider over the embedded migrations.
func NewMigrator(dsn string) (*Migrator, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	return &Migrator{db: db, provider: provider}, nil
}

// Close releases the migration connection.
func (m *Migrator) Close() error {
	return m.db.Close()
}

// Up applies every pending migration and logs each one.
func (m *Migrator) Up(ctx context.Context, logger *slog.Logger) error {
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		logMigration(logger, r)
	}
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context, logger *slog.Logger) error {
	r, err := m.provider.Down(ctx)
	if r != nil {
		logMigration(logger, r)
	}
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	return nil
}

// Status reports every known migration and whether it is applied.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	return statuses, nil
}

func logMigration(logger *slog.Logger, r *goose.MigrationResult) {
	attrs := []any{
		slog.String("direction", r.Direction),
		slog.Duration("duration", r.Duration),
	}
	if r.Source != nil {
		attrs = append(attrs, slog.Int64("version", r.Source.Version), slog.String("path", r.Source.Path))
	}
	if r.Error != nil {
		logger.Error("migration failed", append(attrs, slog.String("error", r.Error.Error()))...)
		return
	}
	logger.Info("migration applied", attrs...)
}
