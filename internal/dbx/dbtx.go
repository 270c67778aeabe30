// Package dbx holds the minimal database/sql abstraction shared by the
// sqlite-backed storage code.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql operations the storage layer needs.
// Both *sql.DB and *sql.Tx satisfy it, so repositories run unchanged inside
// or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
