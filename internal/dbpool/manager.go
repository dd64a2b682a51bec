// Package dbpool owns the shared database connection pool lifecycle.
//
// The pool is constructed lazily on first use: webhook bursts can arrive before
// any request has touched the database, and constructing N pools concurrently
// would leak connections. Acquire therefore follows a double-checked pattern:
// a read-locked fast path for the common case and a write-locked
// check-construct-store critical section for the first caller(s).
package dbpool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"go.uber.org/zap"
)

// OpenFunc constructs a ready-to-use pool. Injectable for tests.
type OpenFunc func(ctx context.Context) (*sqlx.DB, error)

// Config holds pool construction parameters.
type Config struct {
	DSN             string
	MinSize         int
	MaxSize         int
	ConnMaxLifetime time.Duration
}

// Manager guards a lazily constructed, shared *sqlx.DB.
// At most one construction attempt is in flight at any time; a failed attempt
// leaves the handle unset so a later Acquire retries.
type Manager struct {
	mu     sync.RWMutex
	db     *sqlx.DB
	open   OpenFunc
	logger *zap.Logger
}

// NewManager creates a manager that opens a postgres pool from cfg on first Acquire.
func NewManager(cfg *Config, logger *zap.Logger) *Manager {
	return &Manager{
		open:   postgresOpener(cfg),
		logger: logger,
	}
}

// NewManagerWithOpener creates a manager with a custom pool constructor.
func NewManagerWithOpener(open OpenFunc, logger *zap.Logger) *Manager {
	return &Manager{
		open:   open,
		logger: logger,
	}
}

// Acquire returns the shared pool, constructing it if it does not exist yet.
// Construction errors are returned to every waiter and are never cached.
func (m *Manager) Acquire(ctx context.Context) (*sqlx.DB, error) {
	m.mu.RLock()
	db := m.db
	m.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have finished construction while we waited for the lock.
	if m.db != nil {
		return m.db, nil
	}

	db, err := m.open(ctx)
	if err != nil {
		m.logger.Error("Failed to construct database pool", zap.Error(err))
		return nil, fmt.Errorf("storage unavailable: %w", err)
	}

	m.db = db
	m.logger.Info("Database pool constructed")
	return m.db, nil
}

// Close shuts the pool down and clears the handle. Safe to call multiple times;
// a manager whose pool was never constructed is a no-op.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}

	err := m.db.Close()
	m.db = nil
	if err != nil {
		return fmt.Errorf("failed to close database pool: %w", err)
	}
	return nil
}

func postgresOpener(cfg *Config) OpenFunc {
	return func(ctx context.Context) (*sqlx.DB, error) {
		db, err := sqlx.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		db.SetMaxOpenConns(cfg.MaxSize)
		db.SetMaxIdleConns(cfg.MinSize)
		if cfg.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		return db, nil
	}
}
