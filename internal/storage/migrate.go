package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"roster/internal/storage/migrations"
	"roster/internal/storage/seeds"
	"roster/pkg/logging"
)

const migrationTable = "schema_migrations"

// Migrate applies the embedded schema migrations for the store's dialect.
// Each file is applied at most once.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return wrap("migrate", s.applyMigrations(ctx, migrations.FS, string(s.dialect)))
}

// applyMigrations executes the .sql files under root in lexical order, recording
// each applied file in the migration table.
func (s *Store) applyMigrations(ctx context.Context, migrationFS fs.FS, root string) error {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}

	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	createSQL := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at BIGINT NOT NULL
);
`, migrationTable)
	if _, err := s.sqlDB.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range sqlFiles {
		content, err := fs.ReadFile(migrationFS, path.Join(root, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		applied, err := s.isApplied(ctx, file)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied {
			logging.Debug("Migrate", "Migration %s already applied", file)
			continue
		}

		upSQL := ExtractUpMigration(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		err = s.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, upSQL); err != nil {
				if !IsAlreadyExistsError(err) {
					return fmt.Errorf("exec migration %s: %w", file, err)
				}
			}
			_, err := s.exec(ctx, tx,
				fmt.Sprintf("INSERT INTO %s (name, applied_at) VALUES (?, ?) ON CONFLICT (name) DO NOTHING", migrationTable),
				file,
				time.Now().UTC().UnixMilli(),
			)
			if err != nil {
				return fmt.Errorf("record migration %s: %w", file, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		logging.Info("Migrate", "Applied migration %s", file)
	}

	return nil
}

// ExtractUpMigration returns the SQL in the -- +migrate Up section.
func ExtractUpMigration(content string) string {
	upIdx := strings.Index(content, "-- +migrate Up")
	if upIdx == -1 {
		return content
	}
	downIdx := strings.Index(content, "-- +migrate Down")
	if downIdx == -1 {
		return content[upIdx+len("-- +migrate Up"):]
	}
	return content[upIdx+len("-- +migrate Up") : downIdx]
}

// IsAlreadyExistsError reports whether this error indicates idempotent DDL success.
func IsAlreadyExistsError(err error) bool {
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

func (s *Store) isApplied(ctx context.Context, name string) (bool, error) {
	var found int
	row := s.sqlDB.QueryRowContext(ctx, s.dialect.rebind("SELECT 1 FROM "+migrationTable+" WHERE name = ?"), name)
	err := row.Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Seed loads the sample departments, roles and employees. It refuses to run
// against a database that already has departments.
func (s *Store) Seed(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return wrap("seed", err)
	}
	if count > 0 {
		return wrap("seed", ErrAlreadySeeded)
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, seeds.SQL)
		return err
	})
	if err != nil {
		return wrap("seed", err)
	}
	logging.Info("Migrate", "Loaded sample data")
	return nil
}
