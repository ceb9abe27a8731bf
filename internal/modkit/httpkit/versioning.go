package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI routes /api/{version} through mw and hands the scoped router to mount
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/"), func(api Router) {
		api.Use(mw...)
		mount(api)
	})
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
