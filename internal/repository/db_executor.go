// internal/repository/db_executor.go
package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DBExecutor is the read-into-struct surface the user queries need. Both
// statements map rows onto domain.User, so Get and Select are enough; inserts
// use RETURNING through GetContext.
type DBExecutor interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// A checked-out connection, an open transaction and the pool itself can all
// back a repository call.
var (
	_ DBExecutor = (*sqlx.Conn)(nil)
	_ DBExecutor = (*sqlx.Tx)(nil)
	_ DBExecutor = (*sqlx.DB)(nil)
)
