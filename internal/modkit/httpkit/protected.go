package httpkit

import (
	"net/http"
	"path"

	"ingestlab/internal/modkit/swaggerkit"
	"ingestlab/internal/platform/net/middleware"
)

// Protected mounts fn's routes behind p and marks each one secure in the served spec
// a nil port mounts them open
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	if p == nil {
		fn(r)
		return
	}
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(&securedRouter{Router: gr, base: "/"})
	})
}

// securedRouter follows Route nesting so marks carry the full path below the api root
type securedRouter struct {
	Router
	base string
}

func (s *securedRouter) mark(method, p string) string {
	swaggerkit.MarkSecurePath(path.Join(s.base, p), method)
	return p
}

func (s *securedRouter) Route(prefix string, fn func(Router)) {
	s.Router.Route(prefix, func(sub Router) {
		fn(&securedRouter{Router: sub, base: path.Join(s.base, prefix)})
	})
}

func (s *securedRouter) Group(fn func(Router)) {
	s.Router.Group(func(sub Router) { fn(&securedRouter{Router: sub, base: s.base}) })
}

func (s *securedRouter) Get(p string, h Handler)  { s.Router.Get(s.mark(http.MethodGet, p), h) }
func (s *securedRouter) Post(p string, h Handler) { s.Router.Post(s.mark(http.MethodPost, p), h) }
func (s *securedRouter) Put(p string, h Handler)  { s.Router.Put(s.mark(http.MethodPut, p), h) }
func (s *securedRouter) Patch(p string, h Handler) {
	s.Router.Patch(s.mark(http.MethodPatch, p), h)
}
func (s *securedRouter) Delete(p string, h Handler) {
	s.Router.Delete(s.mark(http.MethodDelete, p), h)
}
