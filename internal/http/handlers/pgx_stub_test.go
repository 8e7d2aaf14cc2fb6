package handlers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	if r.scan == nil {
		return fmt.Errorf("no row")
	}
	return r.scan(dest...)
}

// stubRows implements the subset of pgx.Rows the handlers touch; the embedded
// interface covers the rest, which must stay uncalled.
type stubRows struct {
	pgx.Rows
	idx  int
	data [][]any
}

func (r *stubRows) Close()      {}
func (r *stubRows) Err() error  { return nil }
func (r *stubRows) Next() bool  { r.idx++; return r.idx <= len(r.data) }

func (r *stubRows) Scan(dest ...any) error {
	row := r.data[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan arity mismatch: %d != %d", len(dest), len(row))
	}
	for i, src := range row {
		if err := assign(dest[i], src); err != nil {
			return err
		}
	}
	return nil
}

func assign(dest, src any) error {
	switch d := dest.(type) {
	case *string:
		*d = src.(string)
	case *int:
		*d = src.(int)
	case *int64:
		*d = src.(int64)
	case *bool:
		*d = src.(bool)
	case *time.Time:
		*d = src.(time.Time)
	case *uuid.UUID:
		*d = src.(uuid.UUID)
	default:
		return fmt.Errorf("unsupported scan target %T", dest)
	}
	return nil
}

type execCall struct {
	Query string
	Args  []any
}

// stubDB records executed statements and serves canned rows.
type stubDB struct {
	mu       sync.Mutex
	execs    []execCall
	execErr  error
	rowScan  func(dest ...any) error
	listRows [][]any
	queryErr error
}

func (s *stubDB) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.execs = append(s.execs, execCall{Query: query, Args: args})
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubDB) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return stubRow{scan: s.rowScan}
}

func (s *stubDB) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return &stubRows{data: s.listRows}, nil
}

func (s *stubDB) execCalls() []execCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]execCall(nil), s.execs...)
}
