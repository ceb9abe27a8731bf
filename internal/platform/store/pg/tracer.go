package pg

import (
	"context"
	"strings"
	"time"

	"ingestlab/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL     string
	Args    []any
	Elapsed time.Duration
	Err     error
	Slow    bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs every statement at debug, slow ones at warn and failures at error
// it lowers its own level to debug so SQL logging works under an info root
func Tracer(root logger.Logger) QueryTracer {
	return logTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type logTracer struct{ log logger.Logger }

func (t logTracer) OnQuery(_ context.Context, ev QueryEvent) {
	var e *zerolog.Event
	switch {
	case ev.Err != nil:
		e = t.log.Error().Err(ev.Err)
	case ev.Slow:
		e = t.log.Warn()
	default:
		e = t.log.Debug()
	}
	e.Dur("elapsed", ev.Elapsed).
		Bool("slow", ev.Slow).
		Str("sql", squash(ev.SQL)).
		Int("args", len(ev.Args)).
		Msg("pg query")
}

// squash collapses runs of whitespace so multi line statements log on one line
func squash(sql string) string { return strings.Join(strings.Fields(sql), " ") }
