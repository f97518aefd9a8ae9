package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/okian/apex/pkg/metrics"
)

// LibsqlStore implements Store on a libsql (sqlite/turso) database. A single
// kv table holds JSON values; writes replace the full value for a key, which
// matches the rewrite-the-partition persistence model of the domain layer.
type LibsqlStore struct {
	db *sql.DB
}

// OpenLibsql opens dsn with the libsql driver and bootstraps the schema.
func OpenLibsql(ctx context.Context, dsn string) (*LibsqlStore, error) {
	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open libsql %s: %w", dsn, err)
	}

	if _, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize kv schema: %w", err)
	}

	return &LibsqlStore{db: db}, nil
}

func (s *LibsqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreOp("get", float64(time.Since(start).Milliseconds())) }()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		metrics.RecordStoreError("get")
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *LibsqlStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	defer func() { metrics.ObserveStoreOp("set", float64(time.Since(start).Milliseconds())) }()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at)
         VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET
             value = excluded.value,
             updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		metrics.RecordStoreError("set")
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *LibsqlStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	defer func() { metrics.ObserveStoreOp("delete", float64(time.Since(start).Milliseconds())) }()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		metrics.RecordStoreError("delete")
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *LibsqlStore) Close() error {
	return s.db.Close()
}
