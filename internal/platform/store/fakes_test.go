package store

import (
	"context"
	"errors"
	"reflect"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// fakeRows iterates over in-memory data and assigns by position
type fakeRows struct {
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func newFakeRows(cols []string, data ...[]any) *fakeRows {
	return &fakeRows{cols: cols, data: data, idx: -1}
}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("scan out of range")
	}
	src := r.data[r.idx]
	if len(src) != len(dest) {
		return errors.New("dest len mismatch")
	}
	for i := range dest {
		dv, sv := reflect.ValueOf(dest[i]).Elem(), reflect.ValueOf(src[i])
		if !sv.Type().AssignableTo(dv.Type()) {
			return errors.New("cannot scan " + sv.Type().String() + " into " + dv.Type().String())
		}
		dv.Set(sv)
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Columns() []string { return r.cols }

type fakeTag struct{ n int64 }

func (t fakeTag) String() string      { return "INSERT 0 1" }
func (t fakeTag) RowsAffected() int64 { return t.n }

// fakeQuerier answers with canned results and records the last statement
type fakeQuerier struct {
	rows    *fakeRows
	affect  int64
	err     error
	lastSQL string
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	q.lastSQL = sql
	return fakeTag{n: q.affect}, q.err
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	q.lastSQL = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) Row {
	q.lastSQL = sql
	q.rows.Next()
	return q.rows
}

// fakeCH implements chClient
type fakeCH struct {
	inserted [][]any
	table    string
	rows     driver.Rows
	pingErr  error
	closed   bool
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table = table
	f.inserted = append(f.inserted, rows...)
	return nil
}
func (f *fakeCH) Exec(context.Context, string, ...any) error { return nil }
func (f *fakeCH) Query(context.Context, string, ...any) (driver.Rows, error) {
	return f.rows, nil
}
func (f *fakeCH) Ping(context.Context) error { return f.pingErr }
func (f *fakeCH) Close() error               { f.closed = true; return nil }

// fakeDriverRows implements driver.Rows over fakeRows
type fakeDriverRows struct{ *fakeRows }

func (r fakeDriverRows) ScanStruct(any) error              { return errors.New("not supported") }
func (r fakeDriverRows) ColumnTypes() []driver.ColumnType { return nil }
func (r fakeDriverRows) Totals(...any) error               { return nil }
func (r fakeDriverRows) Close() error                      { r.fakeRows.Close(); return nil }
