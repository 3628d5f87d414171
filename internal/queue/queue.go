// Package queue is the durable offline fallback. When the remote store is
// unreachable, result records land here and are flushed later as one batched
// append. The queue lives in a local SQLite database so records survive
// process restarts.
package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/inteligencia-matriz/gestor-bolsao/internal/model"
)

// Queue is a SQLite-backed FIFO of result records awaiting sync.
type Queue struct {
	db     *sql.DB
	dbPath string
}

// Open opens (or creates) the queue database at dbPath and applies pending
// migrations.
func Open(ctx context.Context, dbPath string) (*Queue, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("queue database path is required")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create queue directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open queue database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping queue database: %w", err)
	}

	q := &Queue{db: db, dbPath: dbPath}
	if err := q.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return q, nil
}

// Close closes the underlying database.
func (q *Queue) Close() error {
	return q.db.Close()
}

// Enqueue stores one record at the tail of the queue.
func (q *Queue) Enqueue(ctx context.Context, rec *model.ResultRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record %s: %w", rec.ID, err)
	}

	_, err = q.db.ExecContext(ctx,
		`INSERT INTO pending_records (record_id, payload) VALUES (?, ?)`,
		rec.ID, payload)
	if err != nil {
		return fmt.Errorf("failed to enqueue record %s: %w", rec.ID, err)
	}
	return nil
}

// Pending returns all queued records in insertion order.
func (q *Queue) Pending(ctx context.Context) ([]*model.ResultRecord, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT payload FROM pending_records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*model.ResultRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan pending record: %w", err)
		}

		var rec model.ResultRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode pending record: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending records: %w", err)
	}
	return records, nil
}

// Count returns the number of queued records.
func (q *Queue) Count(ctx context.Context) (int, error) {
	var count int
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pending_records`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}
	return count, nil
}

// Clear removes every queued record in one transaction. Called only after the
// whole batch has been accepted remotely.
func (q *Queue) Clear(ctx context.Context) error {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM pending_records`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear pending records: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}
	return nil
}
