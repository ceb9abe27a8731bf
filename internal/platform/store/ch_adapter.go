package store

import (
	"context"
	"errors"

	"ingestlab/internal/platform/store/ch"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// chClient is the part of *ch.Client the adapter uses
type chClient interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (driver.Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

var _ chClient = (*ch.Client)(nil)

func newCHAdapter(c chClient) Clickhouse {
	return &clickhouseAdapter{inner: c}
}

// clickhouseAdapter adapts the driver backed client to the Clickhouse seam
type clickhouseAdapter struct {
	inner chClient
}

var _ Clickhouse = (*clickhouseAdapter)(nil)

func (a *clickhouseAdapter) Insert(ctx context.Context, table string, data any) error {
	rows, ok := data.([][]any)
	if !ok {
		return errors.New("store: unsupported CH insert shape (want [][]any)")
	}
	return a.inner.Insert(ctx, table, rows)
}

func (a *clickhouseAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.inner.Exec(ctx, sql, args...)
}

func (a *clickhouseAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.inner.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r: r}, nil
}

func (a *clickhouseAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.inner.Ping(ctx)
}

func (a *clickhouseAdapter) Close() error { return a.inner.Close() }

// chRows narrows driver.Rows to store.Rows
type chRows struct{ r driver.Rows }

func (x chRows) Next() bool            { return x.r.Next() }
func (x chRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x chRows) Err() error            { return x.r.Err() }
func (x chRows) Close()                { _ = x.r.Close() }
func (x chRows) Columns() []string     { return x.r.Columns() }
