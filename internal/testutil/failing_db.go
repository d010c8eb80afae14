package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/brunovale/prancheta/internal/db"
)

// FailOnNthExecDB wraps a DBTX and injects an error on the Nth ExecContext
// call. Because the cascade operations commit each store call independently,
// this simulates a mid-cascade failure and lets tests verify that re-running
// the cascade completes idempotently.
//
// ExecContext calls are counted starting at 1. QueryContext and
// QueryRowContext are not counted (reads pass through normally).
type FailOnNthExecDB struct {
	db.DBTX
	FailOn int32
	Err    error

	count atomic.Int32
}

// NewFailOnNthExecDB wraps inner, failing the nth write with err.
func NewFailOnNthExecDB(inner db.DBTX, n int32, err error) *FailOnNthExecDB {
	return &FailOnNthExecDB{DBTX: inner, FailOn: n, Err: err}
}

func (f *FailOnNthExecDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.FailOn {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
