package store

import (
	"context"
	"fmt"
	"time"

	"ingestlab/internal/platform/logger"
	chx "ingestlab/internal/platform/store/ch"
	"ingestlab/internal/platform/store/pg"

	"github.com/sethvargo/go-retry"
)

const (
	defaultConnectRetries = 6
	defaultPingTimeout    = 3 * time.Second
	backoffCeiling        = 2 * time.Second
)

// backoffBase is a var so tests can shrink the wait between pings
var backoffBase = 150 * time.Millisecond

// openPG opens the pool, waits for it to answer, then wraps it in the sql adapter
func openPG(ctx context.Context, cfg Config, log logger.Logger) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:       cfg.PG.URL,
		MaxConns:  cfg.PG.MaxConns,
		AppName:   cfg.AppName,
		SlowQuery: cfg.PG.SlowQuery,
	}, tracer)
	if err != nil {
		return nil, err
	}

	// ping the pool directly so boot pings stay out of the sql trace
	plog := log.With().Str("backend", "pg").Logger()
	if err := pingWithRetry(ctx, cfg.PG.ConnectRetries, cfg.PG.PingTimeout, plog, p.Pool.Ping); err != nil {
		p.Close()
		return nil, err
	}
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config, log logger.Logger) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:       cfg.CH.URL,
		Product:   cfg.CH.ClientName,
		Version:   cfg.CH.ClientVersion,
		Component: cfg.CH.Component,
	})
	if err != nil {
		return nil, err
	}

	clog := log.With().Str("backend", "clickhouse").Logger()
	if err := pingWithRetry(ctx, cfg.CH.ConnectRetries, cfg.CH.PingTimeout, clog, c.Ping); err != nil {
		_ = c.Close()
		return nil, err
	}
	return newCHAdapter(c), nil
}

// pingWithRetry calls ping with exponential backoff until it succeeds,
// attempts run out, or ctx ends
func pingWithRetry(ctx context.Context, attempts int, timeout time.Duration, log logger.Logger, ping func(context.Context) error) error {
	if attempts <= 0 {
		attempts = defaultConnectRetries
	}
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	b := retry.NewExponential(backoffBase)
	b = retry.WithCappedDuration(backoffCeiling, b)
	b = retry.WithMaxRetries(uint64(attempts-1), b)

	n := 0
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		n++
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := ping(pctx); err != nil {
			log.Debug().Err(err).Int("attempt", n).Msg("backend ping failed")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ping failed after %d attempts: %w", n, err)
	}
	return nil
}
