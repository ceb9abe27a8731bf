// Package store opens the optional postgres and clickhouse backends behind small seams
package store

import (
	"context"
	"errors"
	"fmt"

	"ingestlab/internal/platform/logger"
)

// Store holds whichever backends were enabled, a nil field means disabled
type Store struct {
	Log logger.Logger

	// PG keeps analysis history
	PG TxRunner
	// CH keeps session emission telemetry
	CH Clickhouse
}

// Row scans a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a forward only result set, callers must Close it
type Rows interface {
	Row
	Next() bool
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs sql against a pool or an open transaction
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also run fn inside one transaction
// fn returning an error rolls the transaction back
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar seam
type Clickhouse interface {
	// Insert sends data as one batch, data must be [][]any in column order
	Insert(ctx context.Context, table string, data any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Open connects every backend enabled in cfg and waits for it to answer
// a failure closes whatever was already opened
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	var err error
	if cfg.PG.Enabled {
		if s.PG, err = openPG(ctx, cfg, s.Log); err != nil {
			return nil, fmt.Errorf("pg: %w", err)
		}
	}
	if cfg.CH.Enabled {
		if s.CH, err = openCH(ctx, cfg, s.Log); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("clickhouse: %w", err)
		}
	}
	return s, nil
}

// Close releases the open backends, a nil Store is a no op
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.CH != nil {
		errs = append(errs, s.CH.Close())
	}
	if c, ok := s.PG.(interface{ Close() error }); ok && s.PG != nil {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
