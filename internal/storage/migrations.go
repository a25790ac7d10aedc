package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS profiles (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					color TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					profile_id TEXT NOT NULL,
					id INTEGER NOT NULL,
					date TEXT NOT NULL,
					description TEXT NOT NULL,
					category TEXT NOT NULL DEFAULT '',
					source TEXT NOT NULL DEFAULT '',
					institution TEXT NOT NULL DEFAULT '',
					account_last4 TEXT NOT NULL DEFAULT '',
					amount REAL NOT NULL,
					PRIMARY KEY (profile_id, id),
					FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_transactions_category ON transactions(profile_id, category)`,

				`CREATE TABLE IF NOT EXISTS rules (
					profile_id TEXT NOT NULL,
					id TEXT NOT NULL,
					position INTEGER NOT NULL,
					text TEXT NOT NULL,
					category TEXT NOT NULL,
					PRIMARY KEY (profile_id, id),
					FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
				)`,

				`CREATE TABLE IF NOT EXISTS custom_categories (
					profile_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					color TEXT NOT NULL,
					PRIMARY KEY (profile_id, name),
					FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Store raw statement files for re-reading",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS files (
					profile_id TEXT NOT NULL,
					name TEXT NOT NULL,
					kind TEXT NOT NULL,
					content BLOB NOT NULL,
					added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (profile_id, name),
					FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
				)
			`)
			return err
		},
	},
	{
		Version:     3,
		Description: "Add user-entered subcategory to transactions",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`ALTER TABLE transactions ADD COLUMN subcategory TEXT NOT NULL DEFAULT ''`)
			return err
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
