// Package repo provides clickhouse telemetry for settled session configurations
package repo

import (
	"context"
	"fmt"
	"slices"
	"time"

	"ingestlab/internal/core/configsync"
	"ingestlab/internal/core/multimodal"
	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/store"
	"ingestlab/internal/platform/store/ch"
)

// DefaultTable receives one row per emission
const DefaultTable = "config_emissions"

// Repo is the telemetry surface used by the sessions service
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Record(ctx context.Context, e configsync.Emission) error
	Recent(ctx context.Context, sessionID string, limit int) ([]configsync.Emission, error)
}

// CH stores emissions in a MergeTree table
type CH struct {
	db    store.Clickhouse
	table string
}

// NewCH binds the telemetry repo to db; an empty table uses DefaultTable
func NewCH(db store.Clickhouse, table string) (*CH, error) {
	if db == nil {
		return nil, perr.InvalidArgf("sessions telemetry requires a clickhouse handle")
	}
	if table == "" {
		table = DefaultTable
	}
	if !ch.ValidTable(table) {
		return nil, perr.InvalidArgf("invalid telemetry table %q", table)
	}
	return &CH{db: db, table: table}, nil
}

// Table returns the destination table
func (r *CH) Table() string { return r.table }

// EnsureSchema creates the table when missing
func (r *CH) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	session_id      String,
	seq             UInt64,
	transcription   Bool,
	ocr             Bool,
	image_caption   Bool,
	visual_analysis Bool,
	emitted_at      DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (session_id, seq)`, r.table)
	if err := r.db.Exec(ctx, ddl); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "create %s", r.table)
	}
	return nil
}

// Record inserts one emission
func (r *CH) Record(ctx context.Context, e configsync.Emission) error {
	row := []any{
		e.SessionID,
		e.Seq,
		e.Config.Transcription,
		e.Config.OCR,
		e.Config.ImageCaption,
		e.Config.VisualAnalysis,
		e.At.UTC(),
	}
	if err := r.db.Insert(ctx, r.table, [][]any{row}); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "record emission")
	}
	return nil
}

// Emit lets the repo act as a session sink
func (r *CH) Emit(ctx context.Context, e configsync.Emission) error { return r.Record(ctx, e) }

// Recent returns up to limit emissions for a session, oldest first
func (r *CH) Recent(ctx context.Context, sessionID string, limit int) ([]configsync.Emission, error) {
	if limit <= 0 {
		limit = 50
	}
	sql := fmt.Sprintf(`
select session_id, seq, transcription, ocr, image_caption, visual_analysis, emitted_at
from %s
where session_id = ?
order by seq desc
limit ?`, r.table)

	out, err := store.ManyCH(ctx, r.db, scanEmission, sql, sessionID, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "query emissions")
	}
	slices.Reverse(out)
	return out, nil
}

func scanEmission(row store.Row) (configsync.Emission, error) {
	var (
		e  configsync.Emission
		c  multimodal.Config
		at time.Time
	)
	if err := row.Scan(&e.SessionID, &e.Seq, &c.Transcription, &c.OCR, &c.ImageCaption, &c.VisualAnalysis, &at); err != nil {
		return configsync.Emission{}, err
	}
	e.Config = c
	e.At = at.UTC()
	return e, nil
}
