// Package logger owns the process zerolog logger and its request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"ingestlab/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type handed around the codebase
type Logger = zerolog.Logger

// Options shapes the root logger
type Options struct {
	Level       string // trace..panic, unknown means debug
	Format      string // console or json
	Service     string
	Component   string
	Writer      io.Writer // stdout when nil
	WithCaller  bool
	SampleEvery int // keep one event in N when > 1

	StaticFields map[string]string
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_COMPONENT, LOG_CALLER and LOG_SAMPLE_EVERY
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       rc.Get("LEVEL", "debug"),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", "ingestlab"),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root *Logger
)

// Init builds the root logger, only the first call has any effect
func Init(opt Options) {
	once.Do(func() { root = build(opt) })
}

// Get is the root logger, built from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return root
}

func build(opt Options) *Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	name := strings.ToLower(strings.TrimSpace(opt.Level))
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	zc := zerolog.New(w).Level(lvl).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		zc = zc.Str("go_version", bi.GoVersion)
	}
	fields := map[string]string{"service": opt.Service, "component": opt.Component}
	for k, v := range opt.StaticFields {
		fields[k] = v
	}
	for k, v := range fields {
		if v != "" {
			zc = zc.Str(k, v)
		}
	}
	if opt.WithCaller {
		zc = zc.Caller()
	}

	l := zc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	zerolog.DefaultContextLogger = &l
	return &l
}

// Named is a child of the root tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

// WithRequest stores a child of the ctx logger carrying the request and session ids
// blank ids are skipped so a later call can add the session to an existing request
func WithRequest(ctx context.Context, reqID, sessionID string) context.Context {
	if reqID == "" && sessionID == "" {
		return ctx
	}
	zc := C(ctx).With()
	if reqID != "" {
		zc = zc.Str("request_id", reqID)
	}
	if sessionID != "" {
		zc = zc.Str("session_id", sessionID)
	}
	l := zc.Logger()
	return l.WithContext(ctx)
}

// C is the logger stored on ctx, or the root when there is none
func C(ctx context.Context) *Logger {
	Get()
	return zerolog.Ctx(ctx)
}
