// Package middleware adapts chi and go-chi/cors middleware and adds the service's own
package middleware

import (
	"net/http"
	"time"

	pstrings "ingestlab/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Middleware is the standard net/http decorator
type Middleware = func(http.Handler) http.Handler

// RequestID reuses an inbound X-Request-Id or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Real-IP and X-Forwarded-For
func RealIP() Middleware { return chimw.RealIP }

// NoCache marks every response uncacheable
func NoCache() Middleware { return chimw.NoCache }

// RedirectSlashes redirects /sessions/ to /sessions
func RedirectSlashes() Middleware { return chimw.RedirectSlashes }

// StripSlashes routes /sessions/ as /sessions
func StripSlashes() Middleware { return chimw.StripSlashes }

// Heartbeat answers GET path with a bare 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// Timeout ends the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Throttle caps in flight requests, extra callers wait up to wait in a backlog
func Throttle(limit, backlog int, wait time.Duration) Middleware {
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// Compress gzips or deflates responses at level
func Compress(level int) Middleware { return chimw.Compress(level) }

// CORSOptions picks origins and headers, empty slices take the defaults below
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS answers preflights for the browser upload client
func CORS(o CORSOptions) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"}),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-Id"}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
