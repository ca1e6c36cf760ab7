// Package localcache is the client's durable key/value store. Values are JSON
// documents kept in a single sqlite table; every mutation holds the cache
// mutex and runs in one transaction.
package localcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/terraincognita07/potsy/internal/localcache/migrations"
	_ "modernc.org/sqlite"
)

const DefaultNamespace = "potsy"

// goose keeps its base FS and dialect in package globals.
var migrateMu sync.Mutex

type Cache struct {
	db        *sql.DB
	mu        sync.Mutex
	closed    bool
	namespace string
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open opens or creates the cache file at path and applies pending
// migrations.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, storageError("open", "", fmt.Errorf("create cache directory: %w", err))
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", filepath.ToSlash(path))
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storageError("open", "", err)
	}
	database.SetMaxOpenConns(1)

	if err := migrate(database); err != nil {
		database.Close()
		return nil, storageError("migrate", "", err)
	}
	return &Cache{db: database, namespace: DefaultNamespace}, nil
}

func migrate(database *sql.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(database, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (cache *Cache) Close() error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.closed {
		return nil
	}
	cache.closed = true
	return cache.db.Close()
}

// Get decodes the value under key into target. It reports false when the key
// is absent.
func (cache *Cache) Get(ctx context.Context, key string, target any) (bool, error) {
	raw, found, err := cache.read(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, &StorageError{Op: "get", Key: key, Err: fmt.Errorf("%w: %v", ErrCorrupt, err)}
	}
	return true, nil
}

func (cache *Cache) Put(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	return cache.mutate(ctx, "put", key, func(tx *sql.Tx) error {
		return cache.write(ctx, tx, key, encoded)
	})
}

func (cache *Cache) Delete(ctx context.Context, key string) error {
	return cache.mutate(ctx, "delete", key, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE namespace = ? AND key = ?`, cache.namespace, key)
		return err
	})
}

func (cache *Cache) LastSync(ctx context.Context) (time.Time, bool, error) {
	var raw string
	found, err := cache.Get(ctx, KeyLastSync, &raw)
	if err != nil || !found {
		return time.Time{}, false, err
	}
	lastSync, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, &StorageError{Op: "get", Key: KeyLastSync, Err: fmt.Errorf("%w: %v", ErrCorrupt, err)}
	}
	return lastSync, true, nil
}

func (cache *Cache) SetLastSync(ctx context.Context, at time.Time) error {
	return cache.Put(ctx, KeyLastSync, at.UTC().Format(time.RFC3339))
}

func (cache *Cache) read(ctx context.Context, key string) ([]byte, bool, error) {
	cache.mu.Lock()
	closed := cache.closed
	cache.mu.Unlock()
	if closed {
		return nil, false, &StorageError{Op: "get", Key: key, Err: ErrClosed}
	}

	raw, found, err := cache.readFrom(ctx, cache.db, key)
	if err != nil {
		return nil, false, &StorageError{Op: "get", Key: key, Err: err}
	}
	return raw, found, nil
}

func (cache *Cache) readFrom(ctx context.Context, source queryer, key string) ([]byte, bool, error) {
	var raw []byte
	err := source.QueryRowContext(ctx, `SELECT value FROM kv WHERE namespace = ? AND key = ?`, cache.namespace, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (cache *Cache) write(ctx context.Context, tx *sql.Tx, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO kv (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, cache.namespace, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// mutate runs fn in a transaction while holding the cache mutex.
func (cache *Cache) mutate(ctx context.Context, op string, key string, fn func(tx *sql.Tx) error) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.closed {
		return &StorageError{Op: op, Key: key, Err: ErrClosed}
	}

	tx, err := cache.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError(op, key, fmt.Errorf("begin transaction: %w", err))
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return storageError(op, key, err)
	}
	if err := tx.Commit(); err != nil {
		return storageError(op, key, fmt.Errorf("commit: %w", err))
	}
	return nil
}
