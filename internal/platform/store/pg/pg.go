// Package pg opens the pgx pool behind the postgres seam
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config describes one pool
type Config struct {
	URL      string
	MaxConns int32
	// AppName shows up in pg_stat_activity
	AppName string
	// SlowQuery flags traced statements at or over it, zero flags none
	SlowQuery time.Duration
}

// PG is an open pool plus the tracer its statements report to
type PG struct {
	Pool      *pgxpool.Pool
	Tracer    QueryTracer
	SlowQuery time.Duration
}

var newPool = pgxpool.NewWithConfig

// PoolConfig parses the DSN and applies the connection limits and application name
func PoolConfig(cfg Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	return pc, nil
}

// Open builds the pool, connections are dialed lazily so it does not ping
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pc, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowQuery: cfg.SlowQuery}, nil
}

// Close closes the pool, nil safe
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
