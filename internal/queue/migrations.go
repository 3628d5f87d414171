package queue

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// expectedSchemaVersion is the latest schema version the application expects.
const expectedSchemaVersion = 2

type migration struct {
	up          func(*sql.Tx) error
	description string
	version     int
}

var migrations = []migration{
	{
		version:     1,
		description: "Initial pending-records table",
		up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS pending_records (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					record_id TEXT NOT NULL,
					payload TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_pending_records_record_id ON pending_records(record_id)`,
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
		version:     2,
		description: "Track flush attempts for diagnostics",
		up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS flush_attempts (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					records INTEGER NOT NULL,
					succeeded INTEGER NOT NULL,
					attempted_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)
			`)
			return err
		},
	},
}

func (q *Queue) migrate(ctx context.Context) error {
	var currentVersion int
	err := q.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, txErr := q.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := m.up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", m.version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, commitErr)
		}

		slog.Info("Applied queue migration",
			"version", m.version,
			"description", m.description)
	}

	var finalVersion int
	err = q.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != expectedSchemaVersion {
		return fmt.Errorf("queue schema version mismatch: expected %d, got %d",
			expectedSchemaVersion, finalVersion)
	}
	return nil
}

// RecordFlushAttempt stores one flush outcome for later inspection.
func (q *Queue) RecordFlushAttempt(ctx context.Context, records int, succeeded bool) error {
	ok := 0
	if succeeded {
		ok = 1
	}
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO flush_attempts (records, succeeded) VALUES (?, ?)`,
		records, ok)
	if err != nil {
		return fmt.Errorf("failed to record flush attempt: %w", err)
	}
	return nil
}
