package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolapi/internal/db"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded schema for the connected dialect
type Migrator struct {
	db     *db.DB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(database *db.DB, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     database,
		logger: lgr,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, tx *sql.Tx, version string) (bool, error) {
	query, args, err := m.db.Builder().Select("COUNT(*)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build migration status query: %w", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

// recordMigration marks a migration as applied
func (m *Migrator) recordMigration(ctx context.Context, tx *sql.Tx, version string) error {
	query, args, err := m.db.Builder().Insert("schema_migrations").
		Columns("version", "applied_at").
		Values(version, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build record migration query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// Migrate applies every pending migration in filename order and returns the
// versions it applied.
func (m *Migrator) Migrate(ctx context.Context) ([]string, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return nil, err
	}

	dir := m.db.Driver()
	entries, err := migrationFiles.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations for %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	var applied []string
	for _, name := range files {
		ok, err := m.migrateFile(ctx, path.Join(dir, name))
		if err != nil {
			return applied, err
		}
		if ok {
			applied = append(applied, name)
		}
	}

	return applied, nil
}

// migrateFile executes one migration file inside its own transaction.
// Version is the filename prefix, e.g. "001_init.sql" => "001".
func (m *Migrator) migrateFile(ctx context.Context, filePath string) (bool, error) {
	filename := path.Base(filePath)
	version := strings.Split(filename, "_")[0]

	content, err := migrationFiles.ReadFile(filePath)
	if err != nil {
		return false, fmt.Errorf("failed to read migration file: %w", err)
	}

	applied := false
	err = m.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		done, err := m.isMigrationApplied(ctx, tx, version)
		if err != nil {
			return err
		}
		if done {
			m.logger.Debug().Str("migration", filename).Msg("Migration already applied, skipping")
			return nil
		}

		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration %s: %w", filename, err)
		}
		if err := m.recordMigration(ctx, tx, version); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if applied {
		m.logger.Info().Str("migration", filename).Msg("Migration successfully applied")
	}
	return applied, nil
}
