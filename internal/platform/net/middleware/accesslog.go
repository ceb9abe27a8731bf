package middleware

import (
	"net/http"
	"time"

	"ingestlab/internal/platform/logger"
	pnet "ingestlab/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions tunes the access log
type AccessLogOptions struct {
	// Slow logs requests at warn once they take this long, 0 never does
	Slow time.Duration
}

// AccessLogZerolog writes one line per request and puts a request scoped logger on the context
// handlers that log through logger.C inherit the request id
func AccessLogZerolog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			r = r.WithContext(logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), ""))
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			took := time.Since(start)
			l := logger.C(r.Context())
			ev := l.Info()
			if opt.Slow > 0 && took >= opt.Slow {
				ev = l.Warn()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			ev.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("took", took).
				Msg("request")
		})
	}
}
