// pkg/db/connection_manager.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrConnection reports that no usable database connection could be obtained.
var ErrConnection = errors.New("database connection unavailable")

// Connection is a single connection checked out of the pool for the duration
// of one request. *sqlx.Conn implements it. Close returns it to the pool.
type Connection interface {
	DBTxBeginner
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	PingContext(ctx context.Context) error
	Close() error
}

// ConnectionManager produces a usable connection or fails fast.
// It never caches a connection between callers; the pool does the reuse.
type ConnectionManager struct {
	db             *sqlx.DB
	acquireTimeout time.Duration
}

// NewConnectionManager creates a ConnectionManager over an open pool.
// A zero acquireTimeout means the caller's context alone bounds Acquire.
func NewConnectionManager(db *sqlx.DB, acquireTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{db: db, acquireTimeout: acquireTimeout}
}

// Acquire checks one connection out of the pool and verifies it is alive.
// There is no retry: any failure is returned as ErrConnection.
func (m *ConnectionManager) Acquire(ctx context.Context) (Connection, error) {
	if m.db == nil {
		return nil, fmt.Errorf("%w: pool not initialized", ErrConnection)
	}

	pingCtx, cancel := m.withTimeout(ctx)
	defer cancel()

	conn, err := m.db.Connx(pingCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return conn, nil
}

// Ping checks that the database is reachable.
func (m *ConnectionManager) Ping(ctx context.Context) error {
	conn, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	return conn.Close()
}

func (m *ConnectionManager) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.acquireTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, m.acquireTimeout)
}
