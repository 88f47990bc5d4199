// Package store provides durable, string-keyed, JSON-valued persistence.
//
// Values live in a single SQLite key/value table under the app data dir.
// Reads are best-effort: a missing key, a corrupt value, or a storage error
// yields the caller-supplied default instead of an error (the in-memory value
// stays authoritative for the session).
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const dbFileName = "taskdeck.sqlite"

// Well-known keys.
const (
	KeyTheme = "theme"
	KeyTasks = "tasks"
)

// Store is a handle to the key/value database. The zero value is not usable;
// call Open.
type Store struct {
	dir string
	db  *sql.DB
}

// DataDir resolves the app data directory.
//
// Test/advanced override (keeps unit tests from touching ~/.taskdeck).
func DataDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TASKDECK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck"), nil
}

// Open creates dir if needed, opens the database, and ensures the schema.
func Open(ctx context.Context, dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("store: empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage (CLI + TUI may run side by side).
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{dir: dir, db: db}, nil
}

// OpenDefault opens the store at DataDir().
func OpenDefault(ctx context.Context) (*Store, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return Open(ctx, dir)
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// errNotFound distinguishes "key absent" from storage failures so Read can
// skip logging for the common first-run case.
var errNotFound = errors.New("store: key not found")

func (s *Store) getRaw(key string) ([]byte, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (s *Store) setRaw(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv(key, value) VALUES(?, ?)`, key, string(value))
	return err
}
