package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"ingestlab/internal/platform/logger"
	pnet "ingestlab/internal/platform/net"
)

// panicBody keeps the envelope fields plus the success flag analyzer clients read
type panicBody struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	RequestID  string `json:"request_id,omitempty"`
}

// RecoverJSON turns a handler panic into a logged JSON 500
// http.ErrAbortHandler is re-panicked so the server can drop the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			rid := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			if rid != "" {
				w.Header().Set("X-Request-Id", rid)
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(panicBody{
				StatusCode: http.StatusInternalServerError,
				Status:     http.StatusText(http.StatusInternalServerError),
				Error:      "panic recovered",
				RequestID:  rid,
			})
		}()
		next.ServeHTTP(w, r)
	})
}
