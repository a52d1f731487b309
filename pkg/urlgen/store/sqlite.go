package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists batches to SQLite.
// It is suitable for single-process use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (or creates) a batch database.
// The path should be a file path (e.g., "./batches.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection: keeps ":memory:" databases coherent and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS batches (
			id TEXT PRIMARY KEY,
			template TEXT NOT NULL,
			sequence INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			url_count INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create batches table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS batch_urls (
			batch_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			url TEXT NOT NULL,
			PRIMARY KEY (batch_id, position)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create batch_urls table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store. The batch and its URLs are written in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, b Batch) error {
	if b.ID == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM batch_urls WHERE batch_id = ?`, b.ID); err != nil {
		return fmt.Errorf("clear batch urls: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO batches (id, template, sequence, created_at, url_count)
		VALUES (?, ?, COALESCE((SELECT MAX(sequence) FROM batches), 0) + 1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			template = excluded.template,
			sequence = excluded.sequence,
			created_at = excluded.created_at,
			url_count = excluded.url_count
	`, b.ID, b.Template, b.CreatedAt.UTC().Format(time.RFC3339Nano), len(b.URLs))
	if err != nil {
		return fmt.Errorf("save batch: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO batch_urls (batch_id, position, url) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare url insert: %w", err)
	}
	defer stmt.Close()

	for i, u := range b.URLs {
		if _, err := stmt.ExecContext(ctx, b.ID, i, u); err != nil {
			return fmt.Errorf("save url %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context, id string) (Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Batch{}, ErrStoreClosed
	}

	b := Batch{ID: id}
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT template, created_at FROM batches WHERE id = ?
	`, id).Scan(&b.Template, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Batch{}, ErrNotFound
	}
	if err != nil {
		return Batch{}, fmt.Errorf("load batch: %w", err)
	}
	if b.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Batch{}, fmt.Errorf("parse created_at: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT url FROM batch_urls WHERE batch_id = ? ORDER BY position
	`, id)
	if err != nil {
		return Batch{}, fmt.Errorf("load batch urls: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return Batch{}, fmt.Errorf("scan batch url: %w", err)
		}
		b.URLs = append(b.URLs, u)
	}
	if err := rows.Err(); err != nil {
		return Batch{}, fmt.Errorf("iterate batch urls: %w", err)
	}
	return b, nil
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, template, url_count, sequence, created_at
		FROM batches
		ORDER BY sequence
	`)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	infos := []Info{}
	for rows.Next() {
		var info Info
		var createdAt string
		if err := rows.Scan(&info.ID, &info.Template, &info.Count, &info.Sequence, &createdAt); err != nil {
			return nil, fmt.Errorf("scan batch info: %w", err)
		}
		created, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		info.CreatedAt = created
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return infos, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM batch_urls WHERE batch_id = ?`, id); err != nil {
		return fmt.Errorf("delete batch urls: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM batches WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
