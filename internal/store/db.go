package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type DB struct {
	Pool *sql.DB

	lock   *flock.Flock
	logger *zap.Logger
}

// Open locks the data dir against a second engine process, opens the
// sqlite pool and runs migrations. sqlite wants a single writer, so the
// pool is capped at one connection.
func Open(dir string, logger *zap.Logger) (*DB, error) {
	lock := flock.New(filepath.Join(dir, "engine.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("data dir %s is locked by another engine process", dir)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.Join(dir, "jobfit.db"))
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		_ = lock.Unlock()
		return nil, err
	}

	if err := Migrate(pool); err != nil {
		_ = pool.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &DB{Pool: pool, lock: lock, logger: logger}, nil
}

func (d *DB) Close() error {
	if d == nil {
		return nil
	}
	if d.lock != nil {
		_ = d.lock.Unlock()
	}
	if d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}
