package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof under prefix when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, middleware.Profiler()).ServeHTTP
	r.Get(prefix, h)
	r.Get(prefix+"/*", h)
}
