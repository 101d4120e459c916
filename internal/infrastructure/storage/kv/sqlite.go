package kv

import (
	"context"
	"database/sql"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_documents (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteStore persists keys in a single-table local SQLite database. The
// driver is pure Go, so the store stays a client-local file, just with
// sturdier write semantics than a flat file.
type SQLiteStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, crerr.New("sqlite store path is required")
	}

	db, err := otelsqlx.Open("sqlite", path,
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName("club-documents"),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "open sqlite database")
	}

	// modernc sqlite serializes writes internally; one connection avoids
	// SQLITE_BUSY churn for this single-document workload.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, crerr.Wrap(err, "ensure kv_documents table")
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv_documents WHERE key = ?`, key)
	if err != nil {
		if crerr.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, crerr.Wrapf(err, "select key %s", key)
	}

	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return crerr.Wrapf(err, "upsert key %s", key)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
