// Package postgres implements the repository interfaces on PostgreSQL.
// All queries are parameterized; no user input is ever interpolated into
// SQL text, validated or not.
package postgres

import (
	"context"
	"database/sql"
)

// DB is the subset of database/sql the repositories use. Satisfied by
// *sql.DB directly and by the circuit-breaker wrapper in
// internal/resilience/circuitbreaker.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
