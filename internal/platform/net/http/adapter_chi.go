package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type chiRouter struct{ r chi.Router }

// AdaptChi exposes a chi mux as a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m} }

func (c chiRouter) method(m, p string, h Handler) { c.r.Method(m, p, http.HandlerFunc(h)) }

func (c chiRouter) Get(p string, h Handler)    { c.method(http.MethodGet, p, h) }
func (c chiRouter) Post(p string, h Handler)   { c.method(http.MethodPost, p, h) }
func (c chiRouter) Put(p string, h Handler)    { c.method(http.MethodPut, p, h) }
func (c chiRouter) Patch(p string, h Handler)  { c.method(http.MethodPatch, p, h) }
func (c chiRouter) Delete(p string, h Handler) { c.method(http.MethodDelete, p, h) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }
func (c chiRouter) Mux() http.Handler                         { return c.r }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

// Param returns a path parameter captured by chi
func Param(r *http.Request, name string) string { return chi.URLParam(r, name) }
