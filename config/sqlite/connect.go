package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"matching-srv/config"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

//go:embed migrations/001_initial.sql
var initialMigration string

var (
	instance *sql.DB
	mu       sync.RWMutex
)

// Open opens or creates the database at path and applies the schema.
// ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// One writer at a time; also keeps a :memory: database on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	var n int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='match_runs'
	`).Scan(&n)
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := db.ExecContext(ctx, initialMigration); err != nil {
		return fmt.Errorf("failed to run initial migration: %w", err)
	}
	return nil
}

// Connect opens the configured database once and keeps it as the process-wide instance.
func Connect(ctx context.Context, cfg config.StorageConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	db, err := Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	instance = db
	return instance, nil
}

// HealthCheck pings the database.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("SQLite database not initialized")
	}
	if err := instance.PingContext(ctx); err != nil {
		return fmt.Errorf("SQLite health check failed: %w", err)
	}
	return nil
}

// Disconnect closes the database and resets the instance.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	if err != nil {
		return fmt.Errorf("failed to close SQLite database: %w", err)
	}
	return nil
}
