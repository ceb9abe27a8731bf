package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tag int64

func (t tag) String() string      { return "INSERT" }
func (t tag) RowsAffected() int64 { return int64(t) }

type fakeQ struct {
	sql      []string
	args     [][]any
	affected int64
	execErr  error
	rows     []Row
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	if f.execErr != nil {
		return nil, f.execErr
	}
	return tag(f.affected), nil
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return &fakeRows{rows: f.rows, i: -1}, nil
}

func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row { return nil }

type fakeRows struct {
	rows []Row
	i    int
}

func (r *fakeRows) Next() bool        { r.i++; return r.i < len(r.rows) }
func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }
func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.i]
	*dest[0].(*string) = row.ID
	*dest[1].(*string) = row.FileName
	*dest[2].(*string) = row.FileType
	*dest[3].(*int64) = row.FileSize
	*dest[4].(*string) = row.DocumentType
	*dest[5].(*float64) = row.Confidence
	*dest[6].(*int) = row.Recommendations
	*dest[7].(*time.Time) = row.CreatedAt
	return nil
}

func TestEnsureSchema(t *testing.T) {
	t.Parallel()

	q := &fakeQ{}
	if err := NewPG().Bind(q).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if !strings.Contains(q.sql[0], "create table if not exists analysis_history") {
		t.Fatalf("sql = %s", q.sql[0])
	}

	q = &fakeQ{execErr: errors.New("permission denied")}
	if err := NewPG().Bind(q).EnsureSchema(context.Background()); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}

func TestInsert_PassesColumnsInOrder(t *testing.T) {
	t.Parallel()

	q := &fakeQ{affected: 1}
	row := Row{ID: "id-1", FileName: "a.pdf", FileType: "application/pdf", FileSize: 10, DocumentType: "pdf_document", Confidence: 0.8, Recommendations: 2, Result: []byte(`{}`)}
	if err := NewPG().Bind(q).Insert(context.Background(), row); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	args := q.args[0]
	if len(args) != 8 || args[0] != "id-1" || args[3] != int64(10) || args[6] != 2 {
		t.Fatalf("args = %#v", args)
	}
}

func TestInsert_RequiresOneRow(t *testing.T) {
	t.Parallel()

	q := &fakeQ{affected: 0}
	if err := NewPG().Bind(q).Insert(context.Background(), Row{}); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}

func TestInsert_MapsPostgresErrors(t *testing.T) {
	t.Parallel()

	q := &fakeQ{execErr: &pgconn.PgError{Code: "23505", Message: "duplicate key value"}}
	err := NewPG().Bind(q).Insert(context.Background(), Row{ID: "dup"})
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("err = %v", err)
	}
	if !perr.IsDuplicateKey(err) {
		t.Fatalf("root pg error lost: %v", err)
	}
}

func TestRecent(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC)
	q := &fakeQ{rows: []Row{{ID: "b", FileName: "b.png", CreatedAt: at}, {ID: "a", FileName: "a.pdf", CreatedAt: at.Add(-time.Minute)}}}
	got, err := NewPG().Bind(q).Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || !got[0].CreatedAt.Equal(at) {
		t.Fatalf("rows = %+v", got)
	}
	if q.args[0][0] != 5 {
		t.Fatalf("limit arg = %v", q.args[0])
	}
}

func TestBind_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewPG().Bind(nil)
}

func TestNoop(t *testing.T) {
	t.Parallel()

	var r Repo = Noop{}
	ctx := context.Background()
	if r.EnsureSchema(ctx) != nil || r.Insert(ctx, Row{}) != nil {
		t.Fatal("noop should not fail")
	}
	if rows, err := r.Recent(ctx, 10); err != nil || len(rows) != 0 {
		t.Fatalf("rows=%v err=%v", rows, err)
	}
}

type fakeTx struct {
	fakeQ
	txs        int
	rolledBack bool
}

func (f *fakeTx) Tx(_ context.Context, fn func(store.RowQuerier) error) error {
	f.txs++
	if err := fn(&f.fakeQ); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

func TestHistory_InsertPrunesInOneTx(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{fakeQ: fakeQ{affected: 1}}
	h := NewHistory(tx, 100)
	require.NoError(t, h.Insert(context.Background(), Row{ID: "id-1"}))

	assert.Equal(t, 1, tx.txs)
	require.Len(t, tx.sql, 2)
	assert.Contains(t, tx.sql[0], "insert into analysis_history")
	assert.Contains(t, tx.sql[1], "delete from analysis_history")
	assert.Equal(t, []any{100}, tx.args[1])
}

func TestHistory_InsertFailureSkipsPrune(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{fakeQ: fakeQ{affected: 0}}
	err := NewHistory(tx, 100).Insert(context.Background(), Row{ID: "id-1"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB), "err = %v", err)
	assert.True(t, tx.rolledBack)
	assert.Len(t, tx.sql, 1)
}

func TestHistory_UnboundedSkipsTx(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{fakeQ: fakeQ{affected: 1}}
	require.NoError(t, NewHistory(tx, 0).Insert(context.Background(), Row{ID: "id-1"}))
	assert.Zero(t, tx.txs)
	assert.Len(t, tx.sql, 1)
}
