package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "ingestlab/internal/platform/net/http"
	"ingestlab/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, zero values take the defaults
type StackOptions struct {
	CORSOrigins []string      // empty allows any origin
	MaxInFlight int           // 0 disables throttling
	Backlog     int           // waiting requests beyond MaxInFlight
	Timeout     time.Duration // default 30s
	Slow        time.Duration // access log warn threshold, default 500ms
}

// CommonStack is the middleware every versioned route runs through, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 500 * time.Millisecond
	}
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.NoCache(),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight, o.Backlog, o.Timeout))
	}
	return append(stack,
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	)
}

// Auth rejects unresolved clients with an error envelope
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.WriteError)
}
