// Package repo provides postgres history for analysis results
package repo

import (
	"context"
	"time"

	"ingestlab/internal/modkit/repokit"
	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/store"
)

// Repo is the minimal persistence surface for analysis history
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, r Row) error
	Recent(ctx context.Context, limit int) ([]Row, error)
}

// Row is one persisted analysis
type Row struct {
	ID              string
	FileName        string
	FileType        string
	FileSize        int64
	DocumentType    string
	Confidence      float64
	Recommendations int
	Result          []byte // full analysis as json
	CreatedAt       time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
	// Noop keeps nothing and lists nothing
	Noop struct{}
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return bindQueries.Bind(q) }

func (r *queries) EnsureSchema(ctx context.Context) error {
	const sql = `
create table if not exists analysis_history (
	id              uuid primary key,
	file_name       text not null,
	file_type       text not null default '',
	file_size       bigint not null,
	document_type   text not null,
	confidence      double precision not null,
	recommendations int not null,
	result          jsonb not null,
	created_at      timestamptz not null default now()
);
create index if not exists analysis_history_created_at_idx on analysis_history (created_at desc)
`
	if _, err := r.q.Exec(ctx, sql); err != nil {
		return perr.FromPostgres(err, "create analysis_history")
	}
	return nil
}

func (r *queries) Insert(ctx context.Context, row Row) error {
	const sql = `
insert into analysis_history (id, file_name, file_type, file_size, document_type, confidence, recommendations, result)
values ($1, $2, $3, $4, $5, $6, $7, $8)
`
	err := store.ExecOne(ctx, r.q, sql,
		row.ID, row.FileName, row.FileType, row.FileSize, row.DocumentType, row.Confidence, row.Recommendations, row.Result)
	return perr.FromPostgres(err, "insert analysis history")
}

func (r *queries) Recent(ctx context.Context, limit int) ([]Row, error) {
	const sql = `
select id::text, file_name, file_type, file_size, document_type, confidence, recommendations, created_at
from analysis_history
order by created_at desc
limit $1
`
	rows, err := store.Many(ctx, r.q, func(rs store.Row) (Row, error) {
		var out Row
		err := rs.Scan(&out.ID, &out.FileName, &out.FileType, &out.FileSize, &out.DocumentType,
			&out.Confidence, &out.Recommendations, &out.CreatedAt)
		return out, err
	}, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list analysis history")
	}
	return rows, nil
}

func (r *queries) prune(ctx context.Context, keep int) error {
	const sql = `
delete from analysis_history
where id in (select id from analysis_history order by created_at desc, id desc offset $1)
`
	_, err := r.q.Exec(ctx, sql, keep)
	return perr.FromPostgres(err, "prune analysis history")
}

// History is the postgres Repo with a retention cap
// each insert and its prune share one transaction
type History struct {
	Repo
	tx   repokit.TxRunner
	keep int
}

// NewHistory keeps at most keep rows, keep <= 0 keeps everything
func NewHistory(tx repokit.TxRunner, keep int) *History {
	return &History{Repo: NewPG().Bind(tx), tx: tx, keep: keep}
}

var bindQueries = repokit.BindFunc[*queries](func(q repokit.Queryer) *queries {
	return &queries{q: repokit.RequireQueryer(q)}
})

// Insert records row then trims the oldest rows beyond the cap
func (h *History) Insert(ctx context.Context, row Row) error {
	if h.keep <= 0 {
		return h.Repo.Insert(ctx, row)
	}
	return repokit.BindTx(ctx, h.tx, bindQueries, func(r *queries) error {
		if err := r.Insert(ctx, row); err != nil {
			return err
		}
		return r.prune(ctx, h.keep)
	})
}

// EnsureSchema implements Repo
func (Noop) EnsureSchema(context.Context) error { return nil }

// Insert implements Repo
func (Noop) Insert(context.Context, Row) error { return nil }

// Recent implements Repo
func (Noop) Recent(context.Context, int) ([]Row, error) { return nil, nil }
